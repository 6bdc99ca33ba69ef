package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// BusinessMetrics records use case outcomes for the finance records.
type BusinessMetrics interface {
	// RecordOperation counts one use case call.
	// Domain examples: "transactions", "budgets", "insights"
	// Operation examples: "save", "get_all", "summary"
	// Status examples: "success", "error"
	RecordOperation(ctx context.Context, domain, operation, status string)

	// RecordDuration records the duration of a use case call in seconds.
	RecordDuration(ctx context.Context, domain, operation string, duration time.Duration, status string)

	// RecordDecryptFailures counts records dropped from a batch read because they failed to decrypt.
	RecordDecryptFailures(ctx context.Context, domain string, count int)
}

// businessMetrics implements BusinessMetrics using OpenTelemetry metrics.
type businessMetrics struct {
	operationCounter      metric.Int64Counter
	durationHisto         metric.Float64Histogram
	decryptFailureCounter metric.Int64Counter
}

// NewBusinessMetrics creates a BusinessMetrics backed by meterProvider.
// All metric names are prefixed with namespace (e.g., "pfvault_operations_total").
func NewBusinessMetrics(meterProvider metric.MeterProvider, namespace string) (BusinessMetrics, error) {
	meter := meterProvider.Meter(namespace)

	operationCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_operations_total", namespace),
		metric.WithDescription("Total number of business operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create operation counter: %w", err)
	}

	durationHisto, err := meter.Float64Histogram(
		fmt.Sprintf("%s_operation_duration_seconds", namespace),
		metric.WithDescription("Duration of business operations in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	decryptFailureCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_decrypt_failures_total", namespace),
		metric.WithDescription("Total number of stored records skipped because they failed to decrypt"),
		metric.WithUnit("{record}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create decrypt failure counter: %w", err)
	}

	return &businessMetrics{
		operationCounter:      operationCounter,
		durationHisto:         durationHisto,
		decryptFailureCounter: decryptFailureCounter,
	}, nil
}

// RecordOperation increments the operation counter with domain, operation, and status labels.
func (b *businessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	b.operationCounter.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("domain", domain),
			attribute.String("operation", operation),
			attribute.String("status", status),
		),
	)
}

// RecordDuration records the operation duration in seconds with domain, operation, and status labels.
func (b *businessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	b.durationHisto.Record(ctx, duration.Seconds(),
		metric.WithAttributes(
			attribute.String("domain", domain),
			attribute.String("operation", operation),
			attribute.String("status", status),
		),
	)
}

// RecordDecryptFailures adds count to the decrypt failure counter. Zero counts are ignored.
func (b *businessMetrics) RecordDecryptFailures(ctx context.Context, domain string, count int) {
	if count <= 0 {
		return
	}
	b.decryptFailureCounter.Add(ctx, int64(count),
		metric.WithAttributes(attribute.String("domain", domain)),
	)
}

// NoOpBusinessMetrics is a no-op implementation of BusinessMetrics for when metrics are disabled.
type NoOpBusinessMetrics struct{}

// NewNoOpBusinessMetrics creates a no-op BusinessMetrics implementation.
func NewNoOpBusinessMetrics() BusinessMetrics {
	return &NoOpBusinessMetrics{}
}

// RecordOperation does nothing when metrics are disabled.
func (n *NoOpBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {}

// RecordDuration does nothing when metrics are disabled.
func (n *NoOpBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
}

// RecordDecryptFailures does nothing when metrics are disabled.
func (n *NoOpBusinessMetrics) RecordDecryptFailures(ctx context.Context, domain string, count int) {}
