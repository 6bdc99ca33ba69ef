package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/pfvault/internal/crypto/domain"
	"github.com/allisson/pfvault/internal/database"
	financeDomain "github.com/allisson/pfvault/internal/finance/domain"
	"github.com/allisson/pfvault/internal/testutil"
)

func setupSQLiteDB(t *testing.T) *sql.DB {
	t.Helper()
	return testutil.SetupSQLiteDB(t)
}

func TestSQLiteTransactionRepository(t *testing.T) {
	testTransactionStore(t, func(t *testing.T) transactionStore {
		return NewSQLiteTransactionRepository(setupSQLiteDB(t))
	})
}

func TestSQLiteBudgetRepository(t *testing.T) {
	testBudgetStore(t, func(t *testing.T) budgetStore {
		return NewSQLiteBudgetRepository(setupSQLiteDB(t))
	})
}

func TestSQLiteTransactionRepository_CreatedAtLayout(t *testing.T) {
	ctx := context.Background()
	db := setupSQLiteDB(t)
	repo := NewSQLiteTransactionRepository(db)

	tx := storedTransaction("t1", "2024-03", "iv")
	require.NoError(t, repo.Put(ctx, tx))

	var createdAt string
	require.NoError(t, db.QueryRow("SELECT created_at FROM transactions WHERE id = ?", "t1").Scan(&createdAt))
	assert.Equal(t, "2024-03-15T10:30:00.123456789Z", createdAt)
}

func TestSQLiteRepository_WithTx(t *testing.T) {
	ctx := context.Background()
	db := setupSQLiteDB(t)
	repo := NewSQLiteBudgetRepository(db)
	txManager := database.NewTxManager(db)

	err := txManager.WithTx(ctx, func(ctx context.Context) error {
		err := repo.Put(ctx, &financeDomain.StoredBudget{
			Category: "Food",
			Data:     cryptoDomain.Envelope{IV: "iv", Content: "c"},
		})
		require.NoError(t, err)
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	_, err = repo.Get(ctx, "Food")
	assert.ErrorIs(t, err, financeDomain.ErrBudgetNotFound)
}

func TestSQLiteRepository_ClosedDatabase(t *testing.T) {
	ctx := context.Background()
	db := setupSQLiteDB(t)
	transactions := NewSQLiteTransactionRepository(db)
	budgets := NewSQLiteBudgetRepository(db)
	require.NoError(t, db.Close())

	assert.ErrorIs(t, transactions.Put(ctx, storedTransaction("t1", "2024-03", "iv")), cryptoDomain.ErrStorageUnavailable)
	_, err := transactions.GetAll(ctx)
	assert.ErrorIs(t, err, cryptoDomain.ErrStorageUnavailable)
	_, err = transactions.Get(ctx, "t1")
	assert.ErrorIs(t, err, cryptoDomain.ErrStorageUnavailable)
	_, err = budgets.GetAll(ctx)
	assert.ErrorIs(t, err, cryptoDomain.ErrStorageUnavailable)
}

func TestSQLTransactionRepository_UnsupportedDriver(t *testing.T) {
	_, err := NewSQLTransactionRepository(nil, "oracle")
	assert.Error(t, err)

	_, err = NewSQLBudgetRepository(nil, "oracle")
	assert.Error(t, err)
}
