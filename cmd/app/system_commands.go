package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/allisson/cardcheck/cmd/app/commands"
	"github.com/allisson/cardcheck/internal/app"
	"github.com/allisson/cardcheck/internal/config"
)

func getSystemCommands(version string) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "server",
			Usage: "Start the HTTP API and metrics servers",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunServer(ctx, version)
			},
		},
		{
			Name:  "migrate",
			Usage: "Run database migrations for the SQL audit store",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				if !cfg.UsesDatabase() {
					return fmt.Errorf("audit driver %q does not use a database", cfg.AuditDriver)
				}

				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				return commands.RunMigrations(container.Logger(), cfg.AuditDriver, cfg.DBConnectionString)
			},
		},
	}
}
