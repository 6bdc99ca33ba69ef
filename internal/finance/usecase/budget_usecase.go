package usecase

import (
	"context"
	"errors"
	"log/slog"

	cryptoDomain "github.com/allisson/pfvault/internal/crypto/domain"
	cryptoService "github.com/allisson/pfvault/internal/crypto/service"
	"github.com/allisson/pfvault/internal/database"
	financeDomain "github.com/allisson/pfvault/internal/finance/domain"
)

// budgetUseCase implements the BudgetUseCase interface.
type budgetUseCase struct {
	txManager  database.TxManager
	budgetRepo BudgetRepository
	codec      cryptoService.Codec
	logger     *slog.Logger
}

// Save validates and encrypts budget, then stores it.
//
// The existence check and the write share one transaction. Without overwrite the write
// is an insert-if-absent, so a concurrent create of the same category still loses.
func (b *budgetUseCase) Save(ctx context.Context, budget *financeDomain.Budget, overwrite bool) error {
	if err := budget.Validate(); err != nil {
		return err
	}

	envelope, err := b.codec.Encrypt(ctx, budget)
	if err != nil {
		return err
	}

	stored := &financeDomain.StoredBudget{
		Category: budget.Category,
		Data:     envelope,
	}

	return b.txManager.WithTx(ctx, func(txCtx context.Context) error {
		if overwrite {
			return b.budgetRepo.Put(txCtx, stored)
		}

		_, err := b.budgetRepo.Get(txCtx, budget.Category)
		if err == nil {
			return financeDomain.NewBudgetAlreadyExistsError(budget.Category)
		}
		if !errors.Is(err, financeDomain.ErrBudgetNotFound) {
			return err
		}

		if err := b.budgetRepo.Create(txCtx, stored); err != nil {
			if errors.Is(err, financeDomain.ErrBudgetAlreadyExists) {
				return financeDomain.NewBudgetAlreadyExistsError(budget.Category)
			}
			return err
		}
		return nil
	})
}

// GetAll decrypts every stored budget, skipping the ones that fail to decrypt.
func (b *budgetUseCase) GetAll(ctx context.Context) (*financeDomain.BatchResult[*financeDomain.Budget], error) {
	rows, err := b.budgetRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return decryptBatch[*financeDomain.StoredBudget, financeDomain.Budget](
		ctx,
		b.codec,
		b.logger,
		rows,
		func(row *financeDomain.StoredBudget) string { return row.Category },
		func(row *financeDomain.StoredBudget) cryptoDomain.Envelope { return row.Data },
	)
}

// Get decrypts the budget for category.
func (b *budgetUseCase) Get(ctx context.Context, category string) (*financeDomain.Budget, error) {
	row, err := b.budgetRepo.Get(ctx, category)
	if err != nil {
		return nil, err
	}

	var budget financeDomain.Budget
	if err := b.codec.Decrypt(ctx, row.Data, &budget); err != nil {
		return nil, err
	}
	return &budget, nil
}

// Delete removes the budget for category.
func (b *budgetUseCase) Delete(ctx context.Context, category string) error {
	return b.budgetRepo.Delete(ctx, category)
}

// NewBudgetUseCase creates a new BudgetUseCase.
func NewBudgetUseCase(
	txManager database.TxManager,
	budgetRepo BudgetRepository,
	codec cryptoService.Codec,
	logger *slog.Logger,
) BudgetUseCase {
	return &budgetUseCase{
		txManager:  txManager,
		budgetRepo: budgetRepo,
		codec:      codec,
		logger:     logger,
	}
}
