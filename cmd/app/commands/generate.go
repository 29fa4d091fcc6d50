package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/allisson/passgen/internal/passwords/domain"
	"github.com/allisson/passgen/internal/passwords/http/dto"
	passwordUseCase "github.com/allisson/passgen/internal/passwords/usecase"
)

// RunGenerate generates count passwords for request and writes them in text or
// JSON format. Text output is one password per line followed by its strength.
func RunGenerate(
	ctx context.Context,
	useCase passwordUseCase.PasswordUseCase,
	logger *slog.Logger,
	writer io.Writer,
	request domain.GenerationRequest,
	count int,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	results, err := generate(ctx, useCase, request, count)
	if err != nil {
		return fmt.Errorf("failed to generate password: %w", err)
	}

	logger.Debug("passwords generated",
		slog.String("mode", request.Mode.String()),
		slog.Int("length", request.Length),
		slog.Int("count", len(results)),
	)

	if format == "json" {
		return writeJSON(writer, dto.MapResultsToResponse(results))
	}
	writeResultsText(writer, results)
	return nil
}

func generate(
	ctx context.Context,
	useCase passwordUseCase.PasswordUseCase,
	request domain.GenerationRequest,
	count int,
) ([]*domain.GenerationResult, error) {
	if count == 1 {
		result, err := useCase.Generate(ctx, request)
		if err != nil {
			return nil, err
		}
		return []*domain.GenerationResult{result}, nil
	}
	return useCase.GenerateBatch(ctx, request, count)
}

func writeResultsText(writer io.Writer, results []*domain.GenerationResult) {
	for _, result := range results {
		_, _ = fmt.Fprintf(writer, "%s\t%s (%d/100)\n", result.Password, result.Strength, result.Score)
	}
}
