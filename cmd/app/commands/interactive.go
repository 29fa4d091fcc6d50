package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/allisson/passgen/internal/passwords/domain"
	passwordUseCase "github.com/allisson/passgen/internal/passwords/usecase"
)

// RunInteractive prompts for generation options, prints the passwords and offers
// to generate again with the same options. Invalid requests and exhausted
// generations are reported and the prompts start over.
func RunInteractive(
	ctx context.Context,
	useCase passwordUseCase.PasswordUseCase,
	logger *slog.Logger,
	streams IOTuple,
) error {
	prompter := &prompter{reader: bufio.NewReader(streams.Reader), writer: streams.Writer}

	_, _ = fmt.Fprintln(streams.Writer, "=== Password Generator (interactive mode) ===")

	for {
		_, _ = fmt.Fprintln(streams.Writer)
		request, count, err := prompter.promptOptions()
		if err != nil {
			return err
		}

		for {
			results, err := generate(ctx, useCase, request, count)
			if errors.Is(err, domain.ErrInvalidRequest) || errors.Is(err, domain.ErrGenerationExhausted) {
				_, _ = fmt.Fprintf(streams.Writer, "Error: %v\n", err)
				break
			}
			if err != nil {
				return fmt.Errorf("failed to generate password: %w", err)
			}

			_, _ = fmt.Fprintln(streams.Writer)
			writeResultsText(streams.Writer, results)
			_, _ = fmt.Fprintln(streams.Writer)
			logger.Debug("interactive generation", slog.String("mode", request.Mode.String()))

			again, err := prompter.askYesNo("Generate again with the same options?", false)
			if err != nil {
				return err
			}
			if !again {
				break
			}
		}

		more, err := prompter.askYesNo("Change options and continue?", false)
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

type prompter struct {
	reader *bufio.Reader
	writer io.Writer
}

func (p *prompter) promptOptions() (domain.GenerationRequest, int, error) {
	request := domain.DefaultRequest()

	pronounceable, err := p.askYesNo("Pronounceable password?", false)
	if err != nil {
		return request, 0, err
	}
	if pronounceable {
		request.Mode = domain.ModePronounceable
	}

	if request.Length, err = p.askInt("Password length", domain.DefaultLength); err != nil {
		return request, 0, err
	}

	if request.Mode == domain.ModePolicy {
		questions := []struct {
			label string
			value *bool
		}{
			{"Include uppercase letters (A-Z)?", &request.IncludeUpper},
			{"Include lowercase letters (a-z)?", &request.IncludeLower},
			{"Include digits (0-9)?", &request.IncludeDigits},
			{"Include symbols?", &request.IncludeSymbols},
		}
		for _, q := range questions {
			if *q.value, err = p.askYesNo(q.label, true); err != nil {
				return request, 0, err
			}
		}
		if request.ExcludeSimilar, err = p.askYesNo("Exclude similar characters (il1Lo0O)?", false); err != nil {
			return request, 0, err
		}
	}

	count, err := p.askInt("How many passwords", 1)
	if err != nil {
		return request, 0, err
	}
	return request, count, nil
}

func (p *prompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (p *prompter) askYesNo(label string, fallback bool) (bool, error) {
	hint := "y/N"
	if fallback {
		hint = "Y/n"
	}
	_, _ = fmt.Fprintf(p.writer, "%s [%s]: ", label, hint)

	answer, err := p.readLine()
	if err != nil {
		return false, err
	}
	return parseYesNo(answer, fallback), nil
}

// askInt re-prompts until the answer is empty or a positive integer.
func (p *prompter) askInt(label string, fallback int) (int, error) {
	for {
		_, _ = fmt.Fprintf(p.writer, "%s [%d]: ", label, fallback)

		answer, err := p.readLine()
		if err != nil {
			return 0, err
		}
		if answer == "" {
			return fallback, nil
		}
		if v, err := strconv.Atoi(answer); err == nil && v > 0 {
			return v, nil
		}
		_, _ = fmt.Fprintln(p.writer, "Please enter a positive number.")
	}
}
