// Package service implements the password generators and the strength estimator.
// Everything here is pure computation over an injected RandomSource: no I/O, no
// logging and no state shared between calls.
package service

import (
	"github.com/allisson/passgen/internal/passwords/domain"
)

// RandomSource supplies uniform random integers. Implementations must be safe for
// concurrent use.
type RandomSource interface {
	// Intn returns a uniform integer in [0, n). n must be positive.
	Intn(n int) (int, error)
}

// Generator produces a password for a request.
type Generator interface {
	Generate(request domain.GenerationRequest) (*domain.GeneratedPassword, error)
}

// StrengthEstimator scores passwords from the alphabet they appear to use.
type StrengthEstimator interface {
	Score(password string) int
	Report(password string) *domain.StrengthReport
}
