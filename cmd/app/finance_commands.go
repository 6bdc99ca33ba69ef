package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/pfvault/cmd/app/commands"
	"github.com/allisson/pfvault/internal/app"
	"github.com/allisson/pfvault/internal/config"
)

func getTransactionCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "add-transaction",
			Usage: "Add a transaction, or replace the one with the same id",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "id",
					Aliases: []string{"i"},
					Usage:   "Transaction ID (generated when omitted)",
				},
				&cli.StringFlag{
					Name:     "amount",
					Aliases:  []string{"a"},
					Required: true,
					Usage:    "Positive decimal amount (e.g., 12.50)",
				},
				&cli.StringFlag{
					Name:     "type",
					Aliases:  []string{"t"},
					Required: true,
					Usage:    "Transaction type: 'income' or 'expense'",
				},
				&cli.StringFlag{
					Name:     "category",
					Aliases:  []string{"c"},
					Required: true,
					Usage:    "Category name",
				},
				&cli.StringFlag{
					Name:    "description",
					Aliases: []string{"d"},
					Usage:   "Free-form description",
				},
				&cli.StringFlag{
					Name:     "date",
					Required: true,
					Usage:    "Date in YYYY-MM-DD form",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer commands.CloseContainer(container, container.Logger())

				transactionUseCase, err := container.TransactionUseCase()
				if err != nil {
					return err
				}

				return commands.RunAddTransaction(
					ctx,
					transactionUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					commands.TransactionInput{
						ID:          cmd.String("id"),
						Amount:      cmd.String("amount"),
						Type:        cmd.String("type"),
						Category:    cmd.String("category"),
						Description: cmd.String("description"),
						Date:        cmd.String("date"),
					},
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "list-transactions",
			Usage: "List transactions, newest first",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "month",
					Aliases: []string{"m"},
					Usage:   "Only list transactions of this month (YYYY-MM)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer commands.CloseContainer(container, container.Logger())

				transactionUseCase, err := container.TransactionUseCase()
				if err != nil {
					return err
				}

				return commands.RunListTransactions(
					ctx,
					transactionUseCase,
					commands.DefaultIO().Writer,
					cmd.String("month"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "delete-transaction",
			Usage: "Delete a transaction",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "id",
					Aliases:  []string{"i"},
					Required: true,
					Usage:    "Transaction ID",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer commands.CloseContainer(container, container.Logger())

				transactionUseCase, err := container.TransactionUseCase()
				if err != nil {
					return err
				}

				return commands.RunDeleteTransaction(
					ctx,
					transactionUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("id"),
				)
			},
		},
	}
}

func getBudgetCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "set-budget",
			Usage: "Create a category budget; use --edit to replace an existing one",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "category",
					Aliases:  []string{"c"},
					Required: true,
					Usage:    "Category name",
				},
				&cli.StringFlag{
					Name:     "limit",
					Aliases:  []string{"l"},
					Required: true,
					Usage:    "Monthly spending limit",
				},
				&cli.StringFlag{
					Name:  "spent",
					Usage: "Amount already spent",
				},
				&cli.BoolFlag{
					Name:    "edit",
					Aliases: []string{"e"},
					Value:   false,
					Usage:   "Replace the budget when one already exists for the category",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer commands.CloseContainer(container, container.Logger())

				budgetUseCase, err := container.BudgetUseCase()
				if err != nil {
					return err
				}

				return commands.RunSetBudget(
					ctx,
					budgetUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("category"),
					cmd.String("limit"),
					cmd.String("spent"),
					cmd.Bool("edit"),
				)
			},
		},
		{
			Name:  "list-budgets",
			Usage: "List every budget",
			Flags: []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer commands.CloseContainer(container, container.Logger())

				budgetUseCase, err := container.BudgetUseCase()
				if err != nil {
					return err
				}

				return commands.RunListBudgets(
					ctx,
					budgetUseCase,
					commands.DefaultIO().Writer,
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "delete-budget",
			Usage: "Delete a category budget",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "category",
					Aliases:  []string{"c"},
					Required: true,
					Usage:    "Category name",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer commands.CloseContainer(container, container.Logger())

				budgetUseCase, err := container.BudgetUseCase()
				if err != nil {
					return err
				}

				return commands.RunDeleteBudget(
					ctx,
					budgetUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("category"),
				)
			},
		},
	}
}
