package service

import (
	"github.com/allisson/passgen/internal/passwords/domain"
)

var (
	consonants = []rune("bcdfghjklmnprstvwxz")
	vowels     = []rune("aeiou")
)

type pronounceableGenerator struct {
	random RandomSource
}

// NewPronounceableGenerator creates a generator of alternating consonant/vowel
// syllables. Class flags and similar exclusion are ignored.
func NewPronounceableGenerator(random RandomSource) Generator {
	return &pronounceableGenerator{random: random}
}

// Generate returns exactly request.Length characters, starting with a consonant.
// An odd length ends on a lone consonant. Only a negative length is rejected.
func (g *pronounceableGenerator) Generate(request domain.GenerationRequest) (*domain.GeneratedPassword, error) {
	if request.Length < 0 {
		return nil, domain.ErrNegativeLength
	}

	chars := make([]rune, 0, request.Length)
	for len(chars) < request.Length {
		c, err := pick(g.random, consonants)
		if err != nil {
			return nil, err
		}
		chars = append(chars, c)
		if len(chars) == request.Length {
			break
		}

		v, err := pick(g.random, vowels)
		if err != nil {
			return nil, err
		}
		chars = append(chars, v)
	}

	return domain.NewGeneratedPassword(chars, request), nil
}
