package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/allisson/passgen/internal/passwords/http/dto"
	passwordUseCase "github.com/allisson/passgen/internal/passwords/usecase"
)

// RunScore reports the strength of password in text or JSON format.
func RunScore(
	ctx context.Context,
	useCase passwordUseCase.PasswordUseCase,
	logger *slog.Logger,
	writer io.Writer,
	password string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	report := useCase.Score(ctx, password)
	logger.Debug("password scored", slog.Int("score", report.Score))

	if format == "json" {
		return writeJSON(writer, dto.MapReportToResponse(report))
	}

	_, _ = fmt.Fprintf(writer, "Score: %d/100\n", report.Score)
	_, _ = fmt.Fprintf(writer, "Strength: %s\n", report.Strength)
	_, _ = fmt.Fprintf(writer, "Entropy: %.1f bits\n", report.EntropyBits)
	classes := "none"
	if len(report.Classes) > 0 {
		classes = strings.Join(report.Classes, ", ")
	}
	_, _ = fmt.Fprintf(writer, "Classes: %s\n", classes)
	return nil
}

// ReadPassword reads the password to score. On a terminal the input is not
// echoed; otherwise the first line of the reader is used.
func ReadPassword(streams IOTuple) (string, error) {
	if f, ok := streams.Reader.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		_, _ = fmt.Fprint(streams.Writer, "Password: ")
		password, err := term.ReadPassword(int(f.Fd()))
		_, _ = fmt.Fprintln(streams.Writer)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(password), nil
	}

	line, err := bufio.NewReader(streams.Reader).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
