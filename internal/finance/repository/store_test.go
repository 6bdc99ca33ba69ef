package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/pfvault/internal/crypto/domain"
	financeDomain "github.com/allisson/pfvault/internal/finance/domain"
)

// transactionStore and budgetStore are the behaviors every backend must share.
type transactionStore interface {
	Put(ctx context.Context, tx *financeDomain.StoredTransaction) error
	Get(ctx context.Context, id string) (*financeDomain.StoredTransaction, error)
	GetAll(ctx context.Context) ([]*financeDomain.StoredTransaction, error)
	GetAllByMonth(ctx context.Context, monthYear string) ([]*financeDomain.StoredTransaction, error)
	Delete(ctx context.Context, id string) error
}

type budgetStore interface {
	Put(ctx context.Context, budget *financeDomain.StoredBudget) error
	Create(ctx context.Context, budget *financeDomain.StoredBudget) error
	Get(ctx context.Context, category string) (*financeDomain.StoredBudget, error)
	GetAll(ctx context.Context) ([]*financeDomain.StoredBudget, error)
	Delete(ctx context.Context, category string) error
}

func storedTransaction(id, monthYear, iv string) *financeDomain.StoredTransaction {
	return &financeDomain.StoredTransaction{
		ID:        id,
		Data:      cryptoDomain.Envelope{IV: iv, Content: "content-" + iv},
		CreatedAt: time.Date(2024, 3, 15, 10, 30, 0, 123456789, time.UTC),
		MonthYear: monthYear,
	}
}

func ids(transactions []*financeDomain.StoredTransaction) []string {
	out := make([]string, 0, len(transactions))
	for _, tx := range transactions {
		out = append(out, tx.ID)
	}
	return out
}

func testTransactionStore(t *testing.T, newStore func(t *testing.T) transactionStore) {
	ctx := context.Background()

	t.Run("put and get", func(t *testing.T) {
		store := newStore(t)
		tx := storedTransaction("t1", "2024-03", "iv1")

		require.NoError(t, store.Put(ctx, tx))

		got, err := store.Get(ctx, "t1")
		require.NoError(t, err)
		assert.Equal(t, tx.ID, got.ID)
		assert.Equal(t, tx.Data, got.Data)
		assert.Equal(t, tx.MonthYear, got.MonthYear)
		assert.True(t, tx.CreatedAt.Equal(got.CreatedAt))
	})

	t.Run("get missing", func(t *testing.T) {
		store := newStore(t)

		_, err := store.Get(ctx, "missing")
		assert.ErrorIs(t, err, financeDomain.ErrTransactionNotFound)
	})

	t.Run("empty store", func(t *testing.T) {
		store := newStore(t)

		all, err := store.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)

		byMonth, err := store.GetAllByMonth(ctx, "2024-03")
		require.NoError(t, err)
		assert.Empty(t, byMonth)
	})

	t.Run("put overwrites and moves month bucket", func(t *testing.T) {
		store := newStore(t)

		require.NoError(t, store.Put(ctx, storedTransaction("t1", "2024-03", "old")))
		require.NoError(t, store.Put(ctx, storedTransaction("t1", "2024-04", "new")))

		all, err := store.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, "new", all[0].Data.IV)

		march, err := store.GetAllByMonth(ctx, "2024-03")
		require.NoError(t, err)
		assert.Empty(t, march)

		april, err := store.GetAllByMonth(ctx, "2024-04")
		require.NoError(t, err)
		assert.Equal(t, []string{"t1"}, ids(april))
	})

	t.Run("month index", func(t *testing.T) {
		store := newStore(t)

		require.NoError(t, store.Put(ctx, storedTransaction("a", "2024-03", "1")))
		require.NoError(t, store.Put(ctx, storedTransaction("b", "2024-03", "2")))
		require.NoError(t, store.Put(ctx, storedTransaction("c", "2024-04", "3")))

		march, err := store.GetAllByMonth(ctx, "2024-03")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"a", "b"}, ids(march))

		all, err := store.GetAll(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"a", "b", "c"}, ids(all))

		none, err := store.GetAllByMonth(ctx, "2023-03")
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		store := newStore(t)

		require.NoError(t, store.Put(ctx, storedTransaction("t1", "2024-03", "1")))
		require.NoError(t, store.Delete(ctx, "t1"))
		require.NoError(t, store.Delete(ctx, "t1"))
		require.NoError(t, store.Delete(ctx, "never-existed"))

		_, err := store.Get(ctx, "t1")
		assert.ErrorIs(t, err, financeDomain.ErrTransactionNotFound)

		march, err := store.GetAllByMonth(ctx, "2024-03")
		require.NoError(t, err)
		assert.Empty(t, march)
	})
}

func testBudgetStore(t *testing.T, newStore func(t *testing.T) budgetStore) {
	ctx := context.Background()

	budget := func(category, iv string) *financeDomain.StoredBudget {
		return &financeDomain.StoredBudget{
			Category: category,
			Data:     cryptoDomain.Envelope{IV: iv, Content: "content-" + iv},
		}
	}

	t.Run("put and get", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.Put(ctx, budget("Food", "1")))

		got, err := store.Get(ctx, "Food")
		require.NoError(t, err)
		assert.Equal(t, budget("Food", "1"), got)
	})

	t.Run("get missing", func(t *testing.T) {
		store := newStore(t)

		_, err := store.Get(ctx, "Food")
		assert.ErrorIs(t, err, financeDomain.ErrBudgetNotFound)
	})

	t.Run("put overwrites", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.Put(ctx, budget("Food", "1")))
		require.NoError(t, store.Put(ctx, budget("Food", "2")))

		all, err := store.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, "2", all[0].Data.IV)
	})

	t.Run("create refuses an existing category", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.Create(ctx, budget("Food", "1")))

		err := store.Create(ctx, budget("Food", "2"))
		assert.ErrorIs(t, err, financeDomain.ErrBudgetAlreadyExists)

		got, err := store.Get(ctx, "Food")
		require.NoError(t, err)
		assert.Equal(t, "1", got.Data.IV)
	})

	t.Run("get all", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.Put(ctx, budget("Food", "1")))
		require.NoError(t, store.Put(ctx, budget("Rent", "2")))

		all, err := store.GetAll(ctx)
		require.NoError(t, err)

		categories := make([]string, 0, len(all))
		for _, b := range all {
			categories = append(categories, b.Category)
		}
		assert.ElementsMatch(t, []string{"Food", "Rent"}, categories)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.Put(ctx, budget("Food", "1")))

		require.NoError(t, store.Delete(ctx, "Food"))
		require.NoError(t, store.Delete(ctx, "Food"))

		all, err := store.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}
