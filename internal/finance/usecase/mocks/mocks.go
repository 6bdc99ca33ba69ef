// Package mocks provides testify mock implementations of the finance use case interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	financeDomain "github.com/allisson/pfvault/internal/finance/domain"
)

// testingT is the subset of *testing.T the constructors need.
type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockTransactionUseCase is a mock implementation of TransactionUseCase.
type MockTransactionUseCase struct {
	mock.Mock
}

// NewMockTransactionUseCase creates a MockTransactionUseCase whose expectations are asserted on cleanup.
func NewMockTransactionUseCase(t testingT) *MockTransactionUseCase {
	m := &MockTransactionUseCase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Save mocks the Save method of TransactionUseCase.
func (m *MockTransactionUseCase) Save(ctx context.Context, tx *financeDomain.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// GetAll mocks the GetAll method of TransactionUseCase.
func (m *MockTransactionUseCase) GetAll(
	ctx context.Context,
) (*financeDomain.BatchResult[*financeDomain.Transaction], error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*financeDomain.BatchResult[*financeDomain.Transaction]), args.Error(1)
}

// GetByMonth mocks the GetByMonth method of TransactionUseCase.
func (m *MockTransactionUseCase) GetByMonth(
	ctx context.Context,
	monthYear string,
) (*financeDomain.BatchResult[*financeDomain.Transaction], error) {
	args := m.Called(ctx, monthYear)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*financeDomain.BatchResult[*financeDomain.Transaction]), args.Error(1)
}

// Get mocks the Get method of TransactionUseCase.
func (m *MockTransactionUseCase) Get(ctx context.Context, id string) (*financeDomain.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*financeDomain.Transaction), args.Error(1)
}

// Delete mocks the Delete method of TransactionUseCase.
func (m *MockTransactionUseCase) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockBudgetUseCase is a mock implementation of BudgetUseCase.
type MockBudgetUseCase struct {
	mock.Mock
}

// NewMockBudgetUseCase creates a MockBudgetUseCase whose expectations are asserted on cleanup.
func NewMockBudgetUseCase(t testingT) *MockBudgetUseCase {
	m := &MockBudgetUseCase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Save mocks the Save method of BudgetUseCase.
func (m *MockBudgetUseCase) Save(ctx context.Context, budget *financeDomain.Budget, overwrite bool) error {
	args := m.Called(ctx, budget, overwrite)
	return args.Error(0)
}

// GetAll mocks the GetAll method of BudgetUseCase.
func (m *MockBudgetUseCase) GetAll(ctx context.Context) (*financeDomain.BatchResult[*financeDomain.Budget], error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*financeDomain.BatchResult[*financeDomain.Budget]), args.Error(1)
}

// Get mocks the Get method of BudgetUseCase.
func (m *MockBudgetUseCase) Get(ctx context.Context, category string) (*financeDomain.Budget, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*financeDomain.Budget), args.Error(1)
}

// Delete mocks the Delete method of BudgetUseCase.
func (m *MockBudgetUseCase) Delete(ctx context.Context, category string) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

// MockInsightUseCase is a mock implementation of InsightUseCase.
type MockInsightUseCase struct {
	mock.Mock
}

// NewMockInsightUseCase creates a MockInsightUseCase whose expectations are asserted on cleanup.
func NewMockInsightUseCase(t testingT) *MockInsightUseCase {
	m := &MockInsightUseCase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Summary mocks the Summary method of InsightUseCase.
func (m *MockInsightUseCase) Summary(ctx context.Context, monthYear string) (*financeDomain.Summary, error) {
	args := m.Called(ctx, monthYear)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*financeDomain.Summary), args.Error(1)
}
