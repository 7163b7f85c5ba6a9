package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/cardcheck/cmd/app/commands"
	"github.com/allisson/cardcheck/internal/app"
	"github.com/allisson/cardcheck/internal/config"
)

func getAuditCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "hash",
			Usage: "Print the digest the audit log stores for a card number",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "number",
					Aliases:  []string{"n"},
					Required: true,
					Usage:    "Card number to hash",
				},
				&cli.StringFlag{
					Name:    "algorithm",
					Aliases: []string{"alg"},
					Value:   "sha3-256",
					Usage:   "Digest algorithm (sha3-256 or sha3-512)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunHash(
					commands.DefaultIO().Writer,
					cmd.String("number"),
					cmd.String("algorithm"),
				)
			},
		},
		{
			Name:  "audit-records",
			Usage: "List audit records in append order",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "offset",
					Aliases: []string{"o"},
					Value:   0,
					Usage:   "Number of records to skip",
				},
				&cli.IntFlag{
					Name:    "limit",
					Aliases: []string{"l"},
					Value:   50,
					Usage:   "Maximum number of records to show",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				auditUseCase, err := container.AuditUseCase()
				if err != nil {
					return err
				}

				return commands.RunListAuditRecords(
					ctx,
					auditUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					int(cmd.Int("offset")),
					int(cmd.Int("limit")),
					cmd.String("format"),
				)
			},
		},
	}
}
