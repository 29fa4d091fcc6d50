package usecase

import (
	"context"
	"time"

	"github.com/allisson/passgen/internal/metrics"
	"github.com/allisson/passgen/internal/passwords/domain"
)

// passwordUseCaseWithMetrics decorates PasswordUseCase with metrics instrumentation.
type passwordUseCaseWithMetrics struct {
	next    PasswordUseCase
	metrics metrics.BusinessMetrics
}

// NewPasswordUseCaseWithMetrics wraps a PasswordUseCase with metrics recording.
func NewPasswordUseCaseWithMetrics(useCase PasswordUseCase, m metrics.BusinessMetrics) PasswordUseCase {
	return &passwordUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Generate records metrics for single password generation.
func (p *passwordUseCaseWithMetrics) Generate(
	ctx context.Context,
	request domain.GenerationRequest,
) (*domain.GenerationResult, error) {
	start := time.Now()
	result, err := p.next.Generate(ctx, request)
	p.record(ctx, "generate", start, err)
	return result, err
}

// GenerateBatch records metrics for batch password generation.
func (p *passwordUseCaseWithMetrics) GenerateBatch(
	ctx context.Context,
	request domain.GenerationRequest,
	count int,
) ([]*domain.GenerationResult, error) {
	start := time.Now()
	results, err := p.next.GenerateBatch(ctx, request, count)
	p.record(ctx, "generate_batch", start, err)
	return results, err
}

// Score records metrics for strength scoring.
func (p *passwordUseCaseWithMetrics) Score(ctx context.Context, password string) *domain.StrengthReport {
	start := time.Now()
	report := p.next.Score(ctx, password)
	p.record(ctx, "score", start, nil)
	return report
}

func (p *passwordUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := metrics.StatusFor(err)
	p.metrics.RecordOperation(ctx, "passwords", operation, status)
	p.metrics.RecordDuration(ctx, "passwords", operation, time.Since(start), status)
}
