package usecase

import (
	"context"
	"time"

	financeDomain "github.com/allisson/pfvault/internal/finance/domain"
	"github.com/allisson/pfvault/internal/metrics"
)

const (
	transactionsMetricsDomain = "transactions"
	budgetsMetricsDomain      = "budgets"
	insightsMetricsDomain     = "insights"
)

// record reports one use case call to m.
func record(ctx context.Context, m metrics.BusinessMetrics, domain, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	m.RecordOperation(ctx, domain, operation, status)
	m.RecordDuration(ctx, domain, operation, time.Since(start), status)
}

// transactionUseCaseWithMetrics decorates TransactionUseCase with metrics instrumentation.
type transactionUseCaseWithMetrics struct {
	next    TransactionUseCase
	metrics metrics.BusinessMetrics
}

// NewTransactionUseCaseWithMetrics wraps a TransactionUseCase with metrics recording.
func NewTransactionUseCaseWithMetrics(useCase TransactionUseCase, m metrics.BusinessMetrics) TransactionUseCase {
	return &transactionUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Save records metrics for transaction writes.
func (t *transactionUseCaseWithMetrics) Save(ctx context.Context, tx *financeDomain.Transaction) error {
	start := time.Now()
	err := t.next.Save(ctx, tx)
	record(ctx, t.metrics, transactionsMetricsDomain, "save", start, err)
	return err
}

// GetAll records metrics and decrypt failures for full transaction reads.
func (t *transactionUseCaseWithMetrics) GetAll(
	ctx context.Context,
) (*financeDomain.BatchResult[*financeDomain.Transaction], error) {
	start := time.Now()
	result, err := t.next.GetAll(ctx)
	record(ctx, t.metrics, transactionsMetricsDomain, "get_all", start, err)
	if result != nil {
		t.metrics.RecordDecryptFailures(ctx, transactionsMetricsDomain, len(result.FailedIDs))
	}
	return result, err
}

// GetByMonth records metrics and decrypt failures for by-month reads.
func (t *transactionUseCaseWithMetrics) GetByMonth(
	ctx context.Context,
	monthYear string,
) (*financeDomain.BatchResult[*financeDomain.Transaction], error) {
	start := time.Now()
	result, err := t.next.GetByMonth(ctx, monthYear)
	record(ctx, t.metrics, transactionsMetricsDomain, "get_by_month", start, err)
	if result != nil {
		t.metrics.RecordDecryptFailures(ctx, transactionsMetricsDomain, len(result.FailedIDs))
	}
	return result, err
}

// Get records metrics for single transaction reads.
func (t *transactionUseCaseWithMetrics) Get(ctx context.Context, id string) (*financeDomain.Transaction, error) {
	start := time.Now()
	tx, err := t.next.Get(ctx, id)
	record(ctx, t.metrics, transactionsMetricsDomain, "get", start, err)
	return tx, err
}

// Delete records metrics for transaction deletes.
func (t *transactionUseCaseWithMetrics) Delete(ctx context.Context, id string) error {
	start := time.Now()
	err := t.next.Delete(ctx, id)
	record(ctx, t.metrics, transactionsMetricsDomain, "delete", start, err)
	return err
}

// budgetUseCaseWithMetrics decorates BudgetUseCase with metrics instrumentation.
type budgetUseCaseWithMetrics struct {
	next    BudgetUseCase
	metrics metrics.BusinessMetrics
}

// NewBudgetUseCaseWithMetrics wraps a BudgetUseCase with metrics recording.
func NewBudgetUseCaseWithMetrics(useCase BudgetUseCase, m metrics.BusinessMetrics) BudgetUseCase {
	return &budgetUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Save records metrics for budget writes.
func (b *budgetUseCaseWithMetrics) Save(ctx context.Context, budget *financeDomain.Budget, overwrite bool) error {
	start := time.Now()
	err := b.next.Save(ctx, budget, overwrite)
	record(ctx, b.metrics, budgetsMetricsDomain, "save", start, err)
	return err
}

// GetAll records metrics and decrypt failures for budget reads.
func (b *budgetUseCaseWithMetrics) GetAll(
	ctx context.Context,
) (*financeDomain.BatchResult[*financeDomain.Budget], error) {
	start := time.Now()
	result, err := b.next.GetAll(ctx)
	record(ctx, b.metrics, budgetsMetricsDomain, "get_all", start, err)
	if result != nil {
		b.metrics.RecordDecryptFailures(ctx, budgetsMetricsDomain, len(result.FailedIDs))
	}
	return result, err
}

// Get records metrics for single budget reads.
func (b *budgetUseCaseWithMetrics) Get(ctx context.Context, category string) (*financeDomain.Budget, error) {
	start := time.Now()
	budget, err := b.next.Get(ctx, category)
	record(ctx, b.metrics, budgetsMetricsDomain, "get", start, err)
	return budget, err
}

// Delete records metrics for budget deletes.
func (b *budgetUseCaseWithMetrics) Delete(ctx context.Context, category string) error {
	start := time.Now()
	err := b.next.Delete(ctx, category)
	record(ctx, b.metrics, budgetsMetricsDomain, "delete", start, err)
	return err
}

// insightUseCaseWithMetrics decorates InsightUseCase with metrics instrumentation.
type insightUseCaseWithMetrics struct {
	next    InsightUseCase
	metrics metrics.BusinessMetrics
}

// NewInsightUseCaseWithMetrics wraps an InsightUseCase with metrics recording.
func NewInsightUseCaseWithMetrics(useCase InsightUseCase, m metrics.BusinessMetrics) InsightUseCase {
	return &insightUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Summary records metrics for monthly reports.
func (i *insightUseCaseWithMetrics) Summary(ctx context.Context, monthYear string) (*financeDomain.Summary, error) {
	start := time.Now()
	summary, err := i.next.Summary(ctx, monthYear)
	record(ctx, i.metrics, insightsMetricsDomain, "summary", start, err)
	return summary, err
}
