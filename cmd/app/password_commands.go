package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/passgen/cmd/app/commands"
	"github.com/allisson/passgen/internal/app"
	"github.com/allisson/passgen/internal/config"
	"github.com/allisson/passgen/internal/passwords/domain"
)

func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   "Output format: 'text' or 'json'",
	}
}

func noHistoryFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:  "no-history",
		Usage: "Do not append generated passwords to the history file",
	}
}

// newCLIContainer builds a container for a one-shot command. History is only
// written when it is enabled in the configuration and not disabled by flag.
func newCLIContainer(noHistory bool) (*app.Container, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	container := app.NewContainer(cfg)
	// stdout is reserved for command output
	container.SetLogOutput(os.Stderr)
	if noHistory {
		container.DisableHistory()
	}
	return container, nil
}

func requestFromFlags(cmd *cli.Command) domain.GenerationRequest {
	request := domain.GenerationRequest{
		Length:         int(cmd.Int("length")),
		IncludeUpper:   cmd.Bool("upper"),
		IncludeLower:   cmd.Bool("lower"),
		IncludeDigits:  cmd.Bool("digits"),
		IncludeSymbols: cmd.Bool("symbols"),
		ExcludeSimilar: cmd.Bool("exclude-similar"),
		Mode:           domain.ModePolicy,
	}
	if cmd.Bool("pronounceable") {
		request.Mode = domain.ModePronounceable
	}
	return request
}

func getPasswordCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "generate",
			Usage: "Generate one or more passwords",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "length",
					Aliases: []string{"l"},
					Value:   domain.DefaultLength,
					Usage:   "Password length (policy mode requires at least 12)",
				},
				&cli.BoolFlag{Name: "upper", Value: true, Usage: "Include uppercase letters"},
				&cli.BoolFlag{Name: "lower", Value: true, Usage: "Include lowercase letters"},
				&cli.BoolFlag{Name: "digits", Value: true, Usage: "Include digits"},
				&cli.BoolFlag{Name: "symbols", Value: true, Usage: "Include symbols"},
				&cli.BoolFlag{
					Name:  "exclude-similar",
					Usage: "Exclude look-alike characters (il1Lo0O)",
				},
				&cli.BoolFlag{
					Name:    "pronounceable",
					Aliases: []string{"p"},
					Usage:   "Generate an alternating consonant/vowel password",
				},
				&cli.IntFlag{
					Name:    "count",
					Aliases: []string{"c"},
					Value:   1,
					Usage:   "Number of passwords to generate",
				},
				formatFlag(),
				noHistoryFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := newCLIContainer(cmd.Bool("no-history"))
				if err != nil {
					return err
				}
				defer func() { _ = container.Shutdown(ctx) }()

				useCase, err := container.PasswordUseCase()
				if err != nil {
					return err
				}

				return commands.RunGenerate(
					ctx,
					useCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					requestFromFlags(cmd),
					int(cmd.Int("count")),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "score",
			Usage: "Score the strength of a password",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "password",
					Aliases: []string{"p"},
					Usage:   "Password to score (omit to read it from stdin without echo)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := newCLIContainer(true)
				if err != nil {
					return err
				}
				defer func() { _ = container.Shutdown(ctx) }()

				useCase, err := container.PasswordUseCase()
				if err != nil {
					return err
				}

				password := cmd.String("password")
				if password == "" {
					password, err = commands.ReadPassword(commands.DefaultIO())
					if err != nil {
						return err
					}
				}

				return commands.RunScore(
					ctx,
					useCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					password,
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "interactive",
			Usage: "Generate passwords by answering prompts",
			Flags: []cli.Flag{
				noHistoryFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := newCLIContainer(cmd.Bool("no-history"))
				if err != nil {
					return err
				}
				defer func() { _ = container.Shutdown(ctx) }()

				useCase, err := container.PasswordUseCase()
				if err != nil {
					return err
				}

				return commands.RunInteractive(ctx, useCase, container.Logger(), commands.DefaultIO())
			},
		},
	}
}
