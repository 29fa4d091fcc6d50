// Package usecase orchestrates password generation: it validates requests at the
// service boundary, picks a generator, scores the result and forwards it to the
// history sink.
package usecase

import (
	"context"

	"github.com/allisson/passgen/internal/passwords/domain"
)

// HistorySink receives every generated password. Implementations must be safe for
// concurrent use.
type HistorySink interface {
	Append(ctx context.Context, password string) error
}

// PasswordUseCase defines the password generation and scoring operations.
type PasswordUseCase interface {
	// Generate produces one password for request and scores it.
	// Returns domain.ErrInvalidRequest (or a more specific wrapper) for requests that
	// cannot be satisfied and domain.ErrGenerationExhausted when the policy generator
	// runs out of attempts.
	Generate(ctx context.Context, request domain.GenerationRequest) (*domain.GenerationResult, error)

	// GenerateBatch produces count independent passwords for the same request.
	// count must be between 1 and the configured maximum batch size.
	GenerateBatch(
		ctx context.Context,
		request domain.GenerationRequest,
		count int,
	) ([]*domain.GenerationResult, error)

	// Score returns the strength report for an arbitrary password.
	Score(ctx context.Context, password string) *domain.StrengthReport
}
