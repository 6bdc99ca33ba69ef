package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	apperrors "github.com/allisson/pfvault/internal/errors"
	financeDomain "github.com/allisson/pfvault/internal/finance/domain"
	"github.com/allisson/pfvault/internal/finance/http/dto"
	financeUseCase "github.com/allisson/pfvault/internal/finance/usecase"
)

// TransactionInput carries the raw flag values of add-transaction.
type TransactionInput struct {
	ID          string
	Amount      string
	Type        string
	Category    string
	Description string
	Date        string
}

// RunAddTransaction stores a transaction, replacing any existing one with the same id.
// A UUIDv7 id is generated when none is given.
func RunAddTransaction(
	ctx context.Context,
	transactionUseCase financeUseCase.TransactionUseCase,
	logger *slog.Logger,
	writer io.Writer,
	input TransactionInput,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	amount, err := decimal.NewFromString(input.Amount)
	if err != nil {
		return fmt.Errorf("%w: invalid amount %q", apperrors.ErrInvalidInput, input.Amount)
	}

	id := input.ID
	if id == "" {
		id = uuid.Must(uuid.NewV7()).String()
	}

	tx := &financeDomain.Transaction{
		ID:          id,
		Amount:      amount,
		Type:        financeDomain.TransactionType(input.Type),
		Category:    input.Category,
		Description: input.Description,
		Date:        input.Date,
	}

	if err := transactionUseCase.Save(ctx, tx); err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}

	logger.Info("transaction saved", slog.String("id", tx.ID), slog.String("month_year", tx.MonthYear()))

	if format == FormatJSON {
		return writeJSON(writer, dto.MapTransactionToResponse(tx))
	}

	_, _ = fmt.Fprintln(writer, "Transaction saved")
	_, _ = fmt.Fprintf(writer, "ID: %s\n", tx.ID)
	return nil
}

// RunListTransactions prints transactions, newest first. An empty month lists every transaction.
func RunListTransactions(
	ctx context.Context,
	transactionUseCase financeUseCase.TransactionUseCase,
	writer io.Writer,
	month string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	var (
		result *financeDomain.BatchResult[*financeDomain.Transaction]
		err    error
	)
	if month == "" {
		result, err = transactionUseCase.GetAll(ctx)
	} else {
		result, err = transactionUseCase.GetByMonth(ctx, month)
	}
	if err != nil {
		return fmt.Errorf("failed to list transactions: %w", err)
	}

	financeDomain.SortTransactionsByDateDesc(result.Items)

	if format == FormatJSON {
		return writeJSON(writer, dto.MapTransactionsToListResponse(result.Items, result.FailedIDs))
	}

	tw := tabwriter.NewWriter(writer, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "DATE\tTYPE\tAMOUNT\tCATEGORY\tDESCRIPTION\tID")
	for _, tx := range result.Items {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			tx.Date, tx.Type, tx.Amount.StringFixed(2), tx.Category, tx.Description, tx.ID)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	writeFailedIDs(writer, result.FailedIDs)
	return nil
}

// RunDeleteTransaction removes a transaction. Deleting an unknown id succeeds.
func RunDeleteTransaction(
	ctx context.Context,
	transactionUseCase financeUseCase.TransactionUseCase,
	logger *slog.Logger,
	writer io.Writer,
	id string,
) error {
	if err := transactionUseCase.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	logger.Info("transaction deleted", slog.String("id", id))
	_, _ = fmt.Fprintf(writer, "Transaction %s deleted\n", id)
	return nil
}
