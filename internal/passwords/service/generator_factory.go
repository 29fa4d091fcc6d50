package service

import (
	"github.com/allisson/passgen/internal/passwords/domain"
)

// NewGenerator creates the generator for mode.
func NewGenerator(mode domain.Mode, random RandomSource, maxAttempts int) (Generator, error) {
	switch mode {
	case domain.ModePolicy:
		return NewPolicyGenerator(random, maxAttempts), nil
	case domain.ModePronounceable:
		return NewPronounceableGenerator(random), nil
	default:
		return nil, domain.ErrInvalidMode
	}
}
