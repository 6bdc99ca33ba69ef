package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	financeDomain "github.com/allisson/pfvault/internal/finance/domain"
)

// MockTransactionRepository is a mock implementation of TransactionRepository.
type MockTransactionRepository struct {
	mock.Mock
}

// NewMockTransactionRepository creates a MockTransactionRepository whose expectations are asserted on cleanup.
func NewMockTransactionRepository(t testingT) *MockTransactionRepository {
	m := &MockTransactionRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Put mocks the Put method of TransactionRepository.
func (m *MockTransactionRepository) Put(ctx context.Context, tx *financeDomain.StoredTransaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// Get mocks the Get method of TransactionRepository.
func (m *MockTransactionRepository) Get(ctx context.Context, id string) (*financeDomain.StoredTransaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*financeDomain.StoredTransaction), args.Error(1)
}

// GetAll mocks the GetAll method of TransactionRepository.
func (m *MockTransactionRepository) GetAll(ctx context.Context) ([]*financeDomain.StoredTransaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*financeDomain.StoredTransaction), args.Error(1)
}

// GetAllByMonth mocks the GetAllByMonth method of TransactionRepository.
func (m *MockTransactionRepository) GetAllByMonth(
	ctx context.Context,
	monthYear string,
) ([]*financeDomain.StoredTransaction, error) {
	args := m.Called(ctx, monthYear)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*financeDomain.StoredTransaction), args.Error(1)
}

// Delete mocks the Delete method of TransactionRepository.
func (m *MockTransactionRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockBudgetRepository is a mock implementation of BudgetRepository.
type MockBudgetRepository struct {
	mock.Mock
}

// NewMockBudgetRepository creates a MockBudgetRepository whose expectations are asserted on cleanup.
func NewMockBudgetRepository(t testingT) *MockBudgetRepository {
	m := &MockBudgetRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Put mocks the Put method of BudgetRepository.
func (m *MockBudgetRepository) Put(ctx context.Context, budget *financeDomain.StoredBudget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

// Create mocks the Create method of BudgetRepository.
func (m *MockBudgetRepository) Create(ctx context.Context, budget *financeDomain.StoredBudget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

// Get mocks the Get method of BudgetRepository.
func (m *MockBudgetRepository) Get(ctx context.Context, category string) (*financeDomain.StoredBudget, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*financeDomain.StoredBudget), args.Error(1)
}

// GetAll mocks the GetAll method of BudgetRepository.
func (m *MockBudgetRepository) GetAll(ctx context.Context) ([]*financeDomain.StoredBudget, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*financeDomain.StoredBudget), args.Error(1)
}

// Delete mocks the Delete method of BudgetRepository.
func (m *MockBudgetRepository) Delete(ctx context.Context, category string) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}
