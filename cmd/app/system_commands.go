package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/pfvault/cmd/app/commands"
	"github.com/allisson/pfvault/internal/app"
	"github.com/allisson/pfvault/internal/config"
	"github.com/allisson/pfvault/internal/database"
)

func getSystemCommands(version string) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "server",
			Usage: "Start the HTTP server",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunServer(ctx, version)
			},
		},
		{
			Name:  "migrate",
			Usage: "Run database migrations",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				cfg.DBAutoMigrate = false
				container := app.NewContainer(cfg)
				defer commands.CloseContainer(container, container.Logger())

				if cfg.DBDriver == database.DriverRedis {
					return commands.RunMigrations(nil, cfg.DBDriver, container.Logger())
				}

				db, err := container.DB()
				if err != nil {
					return err
				}

				return commands.RunMigrations(db, cfg.DBDriver, container.Logger())
			},
		},
		{
			Name:  "init-key",
			Usage: "Create the encryption key if it does not exist yet",
			Flags: []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer commands.CloseContainer(container, container.Logger())

				keyManager, err := container.KeyManager()
				if err != nil {
					return err
				}

				return commands.RunInitKey(
					ctx,
					keyManager,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "summary",
			Usage: "Show the monthly report: totals, budget progress and top expense categories",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "month",
					Aliases:  []string{"m"},
					Required: true,
					Usage:    "Month in YYYY-MM form",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer commands.CloseContainer(container, container.Logger())

				insightUseCase, err := container.InsightUseCase()
				if err != nil {
					return err
				}

				return commands.RunSummary(
					ctx,
					insightUseCase,
					commands.DefaultIO().Writer,
					cmd.String("month"),
					cmd.String("format"),
				)
			},
		},
	}
}
