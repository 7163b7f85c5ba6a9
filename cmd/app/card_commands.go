package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/cardcheck/cmd/app/commands"
	"github.com/allisson/cardcheck/internal/app"
	"github.com/allisson/cardcheck/internal/config"
)

func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   "Output format: 'text' or 'json'",
	}
}

func getCardCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "validate",
			Usage: "Validate a single card number",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "number",
					Aliases:  []string{"n"},
					Required: true,
					Usage:    "Card number (digits only)",
				},
				&cli.BoolFlag{
					Name:    "audit",
					Aliases: []string{"a"},
					Usage:   "Record the result in the audit log (defaults to AUDIT_ENABLED)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				validationUseCase, err := container.ValidationUseCase()
				if err != nil {
					return err
				}

				return commands.RunValidate(
					ctx,
					validationUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("number"),
					auditFlag(cmd, cfg),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "interactive",
			Usage: "Validate card numbers typed at a prompt",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:    "audit",
					Aliases: []string{"a"},
					Usage:   "Record each result in the audit log (defaults to AUDIT_ENABLED)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				validationUseCase, err := container.ValidationUseCase()
				if err != nil {
					return err
				}

				return commands.RunInteractive(
					ctx,
					validationUseCase,
					container.Logger(),
					commands.DefaultIO(),
					auditFlag(cmd, cfg),
				)
			},
		},
		{
			Name:  "validate-batch",
			Usage: "Validate every card_number in a CSV file",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "file",
					Aliases:  []string{"i"},
					Required: true,
					Usage:    "Path to a CSV file with a card_number column",
				},
				&cli.BoolFlag{
					Name:    "audit",
					Aliases: []string{"a"},
					Value:   true,
					Usage:   "Record each result in the audit log",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				batchUseCase, err := container.BatchUseCase()
				if err != nil {
					return err
				}

				return commands.RunValidateBatch(
					ctx,
					batchUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("file"),
					cmd.Bool("audit"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "generate",
			Usage: "Generate Luhn-valid test card numbers",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "prefix",
					Aliases: []string{"p"},
					Value:   "",
					Usage:   "Leading digits, e.g. 4 for Visa",
				},
				&cli.IntFlag{
					Name:    "length",
					Aliases: []string{"l"},
					Value:   16,
					Usage:   "Number length (13-19)",
				},
				&cli.IntFlag{
					Name:    "count",
					Aliases: []string{"c"},
					Value:   1,
					Usage:   "How many numbers to generate",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(config.Load())

				return commands.RunGenerate(
					container.Validator(),
					container.Classifier(),
					commands.DefaultIO().Writer,
					cmd.String("prefix"),
					int(cmd.Int("length")),
					int(cmd.Int("count")),
					cmd.String("format"),
				)
			},
		},
	}
}

// auditFlag returns --audit when it was given and the configured default otherwise.
func auditFlag(cmd *cli.Command, cfg *config.Config) bool {
	if cmd.IsSet("audit") {
		return cmd.Bool("audit")
	}
	return cfg.AuditEnabled
}
