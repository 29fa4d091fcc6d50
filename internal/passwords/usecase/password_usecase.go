package usecase

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/allisson/passgen/internal/passwords/domain"
	"github.com/allisson/passgen/internal/passwords/service"
)

// batchConcurrency caps the goroutines used by GenerateBatch.
const batchConcurrency = 8

// Config holds password use case configuration.
type Config struct {
	MaxLength    int
	MaxBatchSize int
	MaxAttempts  int
}

type passwordUseCase struct {
	config    Config
	random    service.RandomSource
	estimator service.StrengthEstimator
	history   HistorySink
	logger    *slog.Logger
}

// NewPasswordUseCase creates a PasswordUseCase. Zero config values fall back to
// the domain defaults.
func NewPasswordUseCase(
	config Config,
	random service.RandomSource,
	estimator service.StrengthEstimator,
	history HistorySink,
	logger *slog.Logger,
) PasswordUseCase {
	if config.MaxLength < 1 {
		config.MaxLength = domain.DefaultMaxLength
	}
	if config.MaxBatchSize < 1 {
		config.MaxBatchSize = domain.DefaultMaxBatchSize
	}
	if config.MaxAttempts < 1 {
		config.MaxAttempts = domain.DefaultMaxAttempts
	}
	return &passwordUseCase{
		config:    config,
		random:    random,
		estimator: estimator,
		history:   history,
		logger:    logger,
	}
}

// Generate validates the request, generates and scores one password, then appends
// it to the history sink. A failing sink is logged and does not fail the call.
func (p *passwordUseCase) Generate(
	ctx context.Context,
	request domain.GenerationRequest,
) (*domain.GenerationResult, error) {
	if err := p.validate(request); err != nil {
		return nil, err
	}
	return p.generate(ctx, request)
}

// GenerateBatch generates count passwords concurrently. The first failure cancels
// the remaining generations.
func (p *passwordUseCase) GenerateBatch(
	ctx context.Context,
	request domain.GenerationRequest,
	count int,
) ([]*domain.GenerationResult, error) {
	if count < 1 || count > p.config.MaxBatchSize {
		return nil, domain.ErrInvalidBatchSize
	}
	if err := p.validate(request); err != nil {
		return nil, err
	}

	results := make([]*domain.GenerationResult, count)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)

	for i := range count {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			result, err := p.generate(gctx, request)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Score returns the strength report for password.
func (p *passwordUseCase) Score(ctx context.Context, password string) *domain.StrengthReport {
	return p.estimator.Report(password)
}

func (p *passwordUseCase) validate(request domain.GenerationRequest) error {
	if err := request.Mode.Validate(); err != nil {
		return err
	}
	if request.Length < 1 {
		return domain.ErrLengthRequired
	}
	if request.Length > p.config.MaxLength {
		return domain.ErrLengthTooLong
	}
	return nil
}

func (p *passwordUseCase) generate(
	ctx context.Context,
	request domain.GenerationRequest,
) (*domain.GenerationResult, error) {
	generator, err := service.NewGenerator(request.Mode, p.random, p.config.MaxAttempts)
	if err != nil {
		return nil, err
	}

	password, err := generator.Generate(request)
	if err != nil {
		return nil, err
	}

	plain := password.String()
	score := p.estimator.Score(plain)

	if err := p.history.Append(ctx, plain); err != nil && p.logger != nil {
		p.logger.Warn("failed to append password history",
			slog.String("mode", request.Mode.String()),
			slog.Any("error", err),
		)
	}

	return &domain.GenerationResult{
		Password: plain,
		Score:    score,
		Strength: domain.StrengthForScore(score),
		Mode:     request.Mode,
		Length:   password.Len(),
	}, nil
}
