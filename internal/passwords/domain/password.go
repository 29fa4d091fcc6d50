package domain

// GeneratedPassword is the immutable output of a generator together with the
// request that produced it.
type GeneratedPassword struct {
	characters []rune
	request    GenerationRequest
}

// NewGeneratedPassword copies chars so later changes to the slice do not leak
// into the password.
func NewGeneratedPassword(chars []rune, request GenerationRequest) *GeneratedPassword {
	owned := make([]rune, len(chars))
	copy(owned, chars)
	return &GeneratedPassword{characters: owned, request: request}
}

// String returns the password as a string.
func (p *GeneratedPassword) String() string {
	return string(p.characters)
}

// Runes returns a copy of the password characters.
func (p *GeneratedPassword) Runes() []rune {
	out := make([]rune, len(p.characters))
	copy(out, p.characters)
	return out
}

// Len returns the number of characters.
func (p *GeneratedPassword) Len() int {
	return len(p.characters)
}

// Request returns the request the password was generated from.
func (p *GeneratedPassword) Request() GenerationRequest {
	return p.request
}

// GenerationResult is a generated password paired with its strength.
type GenerationResult struct {
	Password string
	Score    int
	Strength Strength
	Mode     Mode
	Length   int
}
