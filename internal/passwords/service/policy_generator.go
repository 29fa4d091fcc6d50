package service

import (
	"github.com/allisson/passgen/internal/passwords/domain"
)

type policyGenerator struct {
	random      RandomSource
	maxAttempts int
}

// NewPolicyGenerator creates a generator that enforces the character-class policy.
// maxAttempts bounds the reject-and-retry loop; values below 1 fall back to
// domain.DefaultMaxAttempts.
func NewPolicyGenerator(random RandomSource, maxAttempts int) Generator {
	if maxAttempts < 1 {
		maxAttempts = domain.DefaultMaxAttempts
	}
	return &policyGenerator{random: random, maxAttempts: maxAttempts}
}

// Generate builds a password containing at least one character of every selected
// class, with no equal neighbours and no case-folded ascending or descending run
// of three. Equal neighbours left by the shuffle are separated in place; a
// candidate with a run is discarded whole and rebuilt.
// Returns domain.ErrLengthTooShort, domain.ErrEmptyPool or
// domain.ErrGenerationExhausted.
func (g *policyGenerator) Generate(request domain.GenerationRequest) (*domain.GeneratedPassword, error) {
	if request.Length < domain.MinPolicyLength {
		return nil, domain.ErrLengthTooShort
	}

	classes := request.SelectedClasses()
	sources := make([][]rune, 0, len(classes))
	pool := make([]rune, 0, 96)
	for _, class := range classes {
		set := class.Runes()
		if request.ExcludeSimilar {
			set = class.Without(domain.Similar)
		}
		if len(set) == 0 {
			continue
		}
		sources = append(sources, set)
		pool = append(pool, set...)
	}
	if len(pool) == 0 {
		return nil, domain.ErrEmptyPool
	}

	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		chars, err := g.candidate(request.Length, sources, pool)
		if err != nil {
			return nil, err
		}
		separated, err := g.separateRepeats(chars)
		if err != nil {
			return nil, err
		}
		if !separated || hasMonotonicRun(chars) {
			continue
		}
		return domain.NewGeneratedPassword(chars, request), nil
	}

	return nil, domain.ErrGenerationExhausted
}

// candidate draws one mandatory character per source, fills up to length from
// pool without repeating the previous character, then shuffles.
func (g *policyGenerator) candidate(length int, sources [][]rune, pool []rune) ([]rune, error) {
	chars := make([]rune, 0, length)

	for _, set := range sources {
		r, err := pick(g.random, set)
		if err != nil {
			return nil, err
		}
		chars = append(chars, r)
	}

	for len(chars) < length {
		r, err := pick(g.random, pool)
		if err != nil {
			return nil, err
		}
		if len(chars) > 0 && chars[len(chars)-1] == r {
			continue
		}
		chars = append(chars, r)
	}

	if err := shuffle(g.random, chars); err != nil {
		return nil, err
	}
	return chars, nil
}

// separateRepeats moves the second character of every equal pair to a random
// position where it sits between different characters. It reports false when a
// pair has no such position, leaving chars partially repaired.
func (g *policyGenerator) separateRepeats(chars []rune) (bool, error) {
	var positions []int
	for i := 1; i < len(chars); i++ {
		if chars[i] != chars[i-1] {
			continue
		}

		positions = positions[:0]
		for j := range chars {
			if j != i && swapFits(chars, i, j) {
				positions = append(positions, j)
			}
		}
		if len(positions) == 0 {
			return false, nil
		}

		k, err := g.random.Intn(len(positions))
		if err != nil {
			return false, err
		}
		j := positions[k]
		chars[i], chars[j] = chars[j], chars[i]
	}
	return !hasAdjacentRepeat(chars), nil
}

// swapFits reports whether swapping chars[i] and chars[j] leaves both positions
// without an equal neighbour.
func swapFits(chars []rune, i, j int) bool {
	chars[i], chars[j] = chars[j], chars[i]
	fits := !repeatsAt(chars, i) && !repeatsAt(chars, j)
	chars[i], chars[j] = chars[j], chars[i]
	return fits
}

func repeatsAt(chars []rune, i int) bool {
	return (i > 0 && chars[i-1] == chars[i]) || (i+1 < len(chars) && chars[i+1] == chars[i])
}
