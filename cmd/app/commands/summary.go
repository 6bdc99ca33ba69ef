package commands

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/allisson/pfvault/internal/finance/http/dto"
	financeUseCase "github.com/allisson/pfvault/internal/finance/usecase"
)

// RunSummary prints the monthly report for month (YYYY-MM).
func RunSummary(
	ctx context.Context,
	insightUseCase financeUseCase.InsightUseCase,
	writer io.Writer,
	month string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	summary, err := insightUseCase.Summary(ctx, month)
	if err != nil {
		return fmt.Errorf("failed to build summary: %w", err)
	}

	if format == FormatJSON {
		return writeJSON(writer, dto.MapSummaryToResponse(summary))
	}

	overview := summary.Overview
	_, _ = fmt.Fprintf(writer, "Summary for %s\n\n", summary.MonthYear)
	_, _ = fmt.Fprintf(writer, "Income:       %s\n", overview.TotalIncome.StringFixed(2))
	_, _ = fmt.Fprintf(writer, "Expenses:     %s\n", overview.TotalExpenses.StringFixed(2))
	_, _ = fmt.Fprintf(writer, "Balance:      %s\n", overview.Balance.StringFixed(2))
	_, _ = fmt.Fprintf(writer, "Savings rate: %d%%\n", overview.SavingsRate)

	if len(summary.Budgets) > 0 {
		_, _ = fmt.Fprintln(writer, "\nBudgets")
		tw := tabwriter.NewWriter(writer, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(tw, "CATEGORY\tSPENT\tLIMIT\tREMAINING\tUSED\tSTATUS")
		for _, b := range summary.Budgets {
			_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s%%\t%s\n",
				b.Category,
				b.Spent.StringFixed(2),
				b.Limit.StringFixed(2),
				b.Remaining.StringFixed(2),
				b.Percent.StringFixed(0),
				b.Status,
			)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	if len(summary.TopCategories) > 0 {
		_, _ = fmt.Fprintln(writer, "\nTop expense categories")
		for i, c := range summary.TopCategories {
			_, _ = fmt.Fprintf(writer, "%d. %s %s\n", i+1, c.Category, c.Amount.StringFixed(2))
		}
	}

	if len(summary.DailyExpenses) > 0 {
		_, _ = fmt.Fprintln(writer, "\nDaily expenses")
		for _, d := range summary.DailyExpenses {
			_, _ = fmt.Fprintf(writer, "%s %s\n", d.Date, d.Amount.StringFixed(2))
		}
	}

	writeFailedIDs(writer, summary.FailedIDs)
	return nil
}
