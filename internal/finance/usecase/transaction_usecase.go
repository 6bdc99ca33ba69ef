package usecase

import (
	"context"
	"log/slog"
	"time"

	validation "github.com/jellydator/validation"

	cryptoDomain "github.com/allisson/pfvault/internal/crypto/domain"
	cryptoService "github.com/allisson/pfvault/internal/crypto/service"
	financeDomain "github.com/allisson/pfvault/internal/finance/domain"
	customValidation "github.com/allisson/pfvault/internal/validation"
)

// transactionUseCase implements the TransactionUseCase interface.
type transactionUseCase struct {
	transactionRepo TransactionRepository
	codec           cryptoService.Codec
	logger          *slog.Logger
	now             func() time.Time
}

// Save validates, encrypts and upserts tx. The month bucket follows tx.Date.
func (t *transactionUseCase) Save(ctx context.Context, tx *financeDomain.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}

	envelope, err := t.codec.Encrypt(ctx, tx)
	if err != nil {
		return err
	}

	return t.transactionRepo.Put(ctx, &financeDomain.StoredTransaction{
		ID:        tx.ID,
		Data:      envelope,
		CreatedAt: t.now().UTC(),
		MonthYear: tx.MonthYear(),
	})
}

// GetAll decrypts every stored transaction, skipping the ones that fail to decrypt.
func (t *transactionUseCase) GetAll(
	ctx context.Context,
) (*financeDomain.BatchResult[*financeDomain.Transaction], error) {
	rows, err := t.transactionRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return t.decrypt(ctx, rows)
}

// GetByMonth decrypts the transactions of one month bucket.
func (t *transactionUseCase) GetByMonth(
	ctx context.Context,
	monthYear string,
) (*financeDomain.BatchResult[*financeDomain.Transaction], error) {
	err := validation.Validate(monthYear, validation.Required, customValidation.MonthYear)
	if err != nil {
		return nil, customValidation.WrapValidationError(err)
	}

	rows, err := t.transactionRepo.GetAllByMonth(ctx, monthYear)
	if err != nil {
		return nil, err
	}
	return t.decrypt(ctx, rows)
}

// Get decrypts a single transaction.
func (t *transactionUseCase) Get(ctx context.Context, id string) (*financeDomain.Transaction, error) {
	row, err := t.transactionRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	var tx financeDomain.Transaction
	if err := t.codec.Decrypt(ctx, row.Data, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// Delete removes the transaction keyed by id.
func (t *transactionUseCase) Delete(ctx context.Context, id string) error {
	return t.transactionRepo.Delete(ctx, id)
}

func (t *transactionUseCase) decrypt(
	ctx context.Context,
	rows []*financeDomain.StoredTransaction,
) (*financeDomain.BatchResult[*financeDomain.Transaction], error) {
	return decryptBatch[*financeDomain.StoredTransaction, financeDomain.Transaction](
		ctx,
		t.codec,
		t.logger,
		rows,
		func(row *financeDomain.StoredTransaction) string { return row.ID },
		func(row *financeDomain.StoredTransaction) cryptoDomain.Envelope { return row.Data },
	)
}

// NewTransactionUseCase creates a new TransactionUseCase.
func NewTransactionUseCase(
	transactionRepo TransactionRepository,
	codec cryptoService.Codec,
	logger *slog.Logger,
) TransactionUseCase {
	return &transactionUseCase{
		transactionRepo: transactionRepo,
		codec:           codec,
		logger:          logger,
		now:             time.Now,
	}
}
