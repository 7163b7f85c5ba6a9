package usecase

import (
	"context"
	"io"
	"time"

	cardDomain "github.com/allisson/cardcheck/internal/card/domain"
	"github.com/allisson/cardcheck/internal/metrics"
)

// validationUseCaseWithMetrics decorates ValidationUseCase with metrics instrumentation.
type validationUseCaseWithMetrics struct {
	next    ValidationUseCase
	metrics metrics.BusinessMetrics
}

// NewValidationUseCaseWithMetrics wraps a ValidationUseCase with metrics recording.
func NewValidationUseCaseWithMetrics(useCase ValidationUseCase, m metrics.BusinessMetrics) ValidationUseCase {
	return &validationUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Validate records metrics for single card validations. Status is "valid",
// "invalid" or "error".
func (v *validationUseCaseWithMetrics) Validate(
	ctx context.Context,
	cardNumber string,
	audit bool,
) (*cardDomain.Outcome, error) {
	start := time.Now()
	outcome, err := v.next.Validate(ctx, cardNumber, audit)

	status := "error"
	if err == nil {
		status = "invalid"
		if outcome.Valid {
			status = "valid"
		}
	}

	v.metrics.RecordOperation(ctx, "card", "card_validate", status)
	v.metrics.RecordDuration(ctx, "card", "card_validate", time.Since(start), status)
	if err == nil {
		v.metrics.RecordValidation(ctx, outcome.Brand.String(), outcome.Valid)
	}

	return outcome, err
}

// batchUseCaseWithMetrics decorates BatchUseCase with metrics instrumentation.
type batchUseCaseWithMetrics struct {
	next    BatchUseCase
	metrics metrics.BusinessMetrics
}

// NewBatchUseCaseWithMetrics wraps a BatchUseCase with metrics recording.
func NewBatchUseCaseWithMetrics(useCase BatchUseCase, m metrics.BusinessMetrics) BatchUseCase {
	return &batchUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// ValidateFile records metrics for file batch validations.
func (b *batchUseCaseWithMetrics) ValidateFile(
	ctx context.Context,
	path string,
	audit bool,
) ([]*cardDomain.BatchResult, error) {
	start := time.Now()
	results, err := b.next.ValidateFile(ctx, path, audit)
	b.observe(ctx, "batch_validate_file", start, err)
	return results, err
}

// ValidateReader records metrics for stream batch validations.
func (b *batchUseCaseWithMetrics) ValidateReader(
	ctx context.Context,
	r io.Reader,
	audit bool,
) ([]*cardDomain.BatchResult, error) {
	start := time.Now()
	results, err := b.next.ValidateReader(ctx, r, audit)
	b.observe(ctx, "batch_validate_reader", start, err)
	return results, err
}

func (b *batchUseCaseWithMetrics) observe(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	b.metrics.RecordOperation(ctx, "card", operation, status)
	b.metrics.RecordDuration(ctx, "card", operation, time.Since(start), status)
}
