package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	financeDomain "github.com/allisson/pfvault/internal/finance/domain"
	"github.com/allisson/pfvault/internal/finance/usecase/mocks"
)

// mockBusinessMetrics is a mock implementation of metrics.BusinessMetrics for testing.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

func (m *mockBusinessMetrics) RecordDecryptFailures(ctx context.Context, domain string, count int) {
	m.Called(ctx, domain, count)
}

func expectOperation(m *mockBusinessMetrics, domain, operation, status string) {
	m.On("RecordOperation", mock.Anything, domain, operation, status).Once()
	m.On("RecordDuration", mock.Anything, domain, operation, mock.AnythingOfType("time.Duration"), status).Once()
}

func TestTransactionUseCaseWithMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("Save success", func(t *testing.T) {
		next := mocks.NewMockTransactionUseCase(t)
		m := &mockBusinessMetrics{}
		uc := NewTransactionUseCaseWithMetrics(next, m)
		tx := newTransaction("t1", "10", financeDomain.Expense, "food", "2024-03-01")

		next.On("Save", ctx, tx).Return(nil).Once()
		expectOperation(m, "transactions", "save", "success")

		require.NoError(t, uc.Save(ctx, tx))
		m.AssertExpectations(t)
	})

	t.Run("Get error", func(t *testing.T) {
		next := mocks.NewMockTransactionUseCase(t)
		m := &mockBusinessMetrics{}
		uc := NewTransactionUseCaseWithMetrics(next, m)

		next.On("Get", ctx, "t1").Return(nil, financeDomain.ErrTransactionNotFound).Once()
		expectOperation(m, "transactions", "get", "error")

		_, err := uc.Get(ctx, "t1")
		assert.ErrorIs(t, err, financeDomain.ErrTransactionNotFound)
		m.AssertExpectations(t)
	})

	t.Run("GetByMonth records decrypt failures", func(t *testing.T) {
		next := mocks.NewMockTransactionUseCase(t)
		m := &mockBusinessMetrics{}
		uc := NewTransactionUseCaseWithMetrics(next, m)
		result := &financeDomain.BatchResult[*financeDomain.Transaction]{
			Items:     []*financeDomain.Transaction{},
			FailedIDs: []string{"t2", "t3"},
		}

		next.On("GetByMonth", ctx, "2024-03").Return(result, nil).Once()
		expectOperation(m, "transactions", "get_by_month", "success")
		m.On("RecordDecryptFailures", mock.Anything, "transactions", 2).Once()

		got, err := uc.GetByMonth(ctx, "2024-03")
		require.NoError(t, err)
		assert.Same(t, result, got)
		m.AssertExpectations(t)
	})

	t.Run("GetAll error skips decrypt failures", func(t *testing.T) {
		next := mocks.NewMockTransactionUseCase(t)
		m := &mockBusinessMetrics{}
		uc := NewTransactionUseCaseWithMetrics(next, m)

		next.On("GetAll", ctx).Return(nil, errors.New("boom")).Once()
		expectOperation(m, "transactions", "get_all", "error")

		_, err := uc.GetAll(ctx)
		assert.Error(t, err)
		m.AssertExpectations(t)
		m.AssertNotCalled(t, "RecordDecryptFailures", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Delete success", func(t *testing.T) {
		next := mocks.NewMockTransactionUseCase(t)
		m := &mockBusinessMetrics{}
		uc := NewTransactionUseCaseWithMetrics(next, m)

		next.On("Delete", ctx, "t1").Return(nil).Once()
		expectOperation(m, "transactions", "delete", "success")

		require.NoError(t, uc.Delete(ctx, "t1"))
		m.AssertExpectations(t)
	})
}

func TestBudgetUseCaseWithMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("Save conflict", func(t *testing.T) {
		next := mocks.NewMockBudgetUseCase(t)
		m := &mockBusinessMetrics{}
		uc := NewBudgetUseCaseWithMetrics(next, m)
		budget := newBudget("food", "500")

		next.On("Save", ctx, budget, false).Return(financeDomain.NewBudgetAlreadyExistsError("food")).Once()
		expectOperation(m, "budgets", "save", "error")

		err := uc.Save(ctx, budget, false)
		assert.ErrorIs(t, err, financeDomain.ErrBudgetAlreadyExists)
		m.AssertExpectations(t)
	})

	t.Run("GetAll success", func(t *testing.T) {
		next := mocks.NewMockBudgetUseCase(t)
		m := &mockBusinessMetrics{}
		uc := NewBudgetUseCaseWithMetrics(next, m)

		next.On("GetAll", ctx).
			Return(&financeDomain.BatchResult[*financeDomain.Budget]{FailedIDs: []string{"fun"}}, nil).
			Once()
		expectOperation(m, "budgets", "get_all", "success")
		m.On("RecordDecryptFailures", mock.Anything, "budgets", 1).Once()

		result, err := uc.GetAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"fun"}, result.FailedIDs)
		m.AssertExpectations(t)
	})

	t.Run("Get and Delete", func(t *testing.T) {
		next := mocks.NewMockBudgetUseCase(t)
		m := &mockBusinessMetrics{}
		uc := NewBudgetUseCaseWithMetrics(next, m)

		next.On("Get", ctx, "food").Return(newBudget("food", "500"), nil).Once()
		next.On("Delete", ctx, "food").Return(nil).Once()
		expectOperation(m, "budgets", "get", "success")
		expectOperation(m, "budgets", "delete", "success")

		_, err := uc.Get(ctx, "food")
		require.NoError(t, err)
		require.NoError(t, uc.Delete(ctx, "food"))
		m.AssertExpectations(t)
	})
}

func TestInsightUseCaseWithMetrics(t *testing.T) {
	ctx := context.Background()
	next := mocks.NewMockInsightUseCase(t)
	m := &mockBusinessMetrics{}
	uc := NewInsightUseCaseWithMetrics(next, m)

	next.On("Summary", ctx, "2024-03").Return(&financeDomain.Summary{MonthYear: "2024-03"}, nil).Once()
	expectOperation(m, "insights", "summary", "success")

	summary, err := uc.Summary(ctx, "2024-03")
	require.NoError(t, err)
	assert.Equal(t, "2024-03", summary.MonthYear)
	m.AssertExpectations(t)
}
