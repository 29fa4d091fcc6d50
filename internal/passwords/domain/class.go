package domain

import "strings"

// CharacterClass is an immutable named set of characters.
type CharacterClass struct {
	name  string
	chars string
}

var (
	// Upper holds the ASCII uppercase letters.
	Upper = CharacterClass{name: "upper", chars: "ABCDEFGHIJKLMNOPQRSTUVWXYZ"}

	// Lower holds the ASCII lowercase letters.
	Lower = CharacterClass{name: "lower", chars: "abcdefghijklmnopqrstuvwxyz"}

	// Digit holds the decimal digits.
	Digit = CharacterClass{name: "digit", chars: "0123456789"}

	// Symbol holds the fixed set of punctuation accepted in generated passwords.
	Symbol = CharacterClass{name: "symbol", chars: "!@#$%^&*()-_=+[]{}|;:,.<>?"}

	// Similar holds characters that are easy to confuse in many fonts. It is a
	// filter applied to the other classes, never a generation source.
	Similar = CharacterClass{name: "similar", chars: "il1Lo0O"}
)

// Name returns the class name.
func (c CharacterClass) Name() string {
	return c.name
}

// Chars returns the characters of the class.
func (c CharacterClass) Chars() string {
	return c.chars
}

// Runes returns a fresh copy of the class characters.
func (c CharacterClass) Runes() []rune {
	return []rune(c.chars)
}

// Contains reports whether r belongs to the class.
func (c CharacterClass) Contains(r rune) bool {
	return strings.ContainsRune(c.chars, r)
}

// Without returns the class characters with every member of filter removed.
func (c CharacterClass) Without(filter CharacterClass) []rune {
	out := make([]rune, 0, len(c.chars))
	for _, r := range c.chars {
		if !filter.Contains(r) {
			out = append(out, r)
		}
	}
	return out
}
