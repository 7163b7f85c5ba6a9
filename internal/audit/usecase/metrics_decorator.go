package usecase

import (
	"context"
	"time"

	auditDomain "github.com/allisson/cardcheck/internal/audit/domain"
	"github.com/allisson/cardcheck/internal/metrics"
)

// auditUseCaseWithMetrics decorates AuditUseCase with metrics instrumentation.
type auditUseCaseWithMetrics struct {
	next    AuditUseCase
	metrics metrics.BusinessMetrics
}

// NewAuditUseCaseWithMetrics wraps an AuditUseCase with metrics recording.
func NewAuditUseCaseWithMetrics(useCase AuditUseCase, m metrics.BusinessMetrics) AuditUseCase {
	return &auditUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Record records metrics for audit record writes.
func (a *auditUseCaseWithMetrics) Record(
	ctx context.Context,
	cardNumber string,
	valid bool,
	cardType string,
) (*auditDomain.Record, error) {
	start := time.Now()
	record, err := a.next.Record(ctx, cardNumber, valid, cardType)
	a.observe(ctx, "record_append", start, err)
	return record, err
}

// List records metrics for audit record listing.
func (a *auditUseCaseWithMetrics) List(ctx context.Context, offset, limit int) ([]*auditDomain.Record, error) {
	start := time.Now()
	records, err := a.next.List(ctx, offset, limit)
	a.observe(ctx, "record_list", start, err)
	return records, err
}

func (a *auditUseCaseWithMetrics) observe(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "audit", operation, status)
	a.metrics.RecordDuration(ctx, "audit", operation, time.Since(start), status)
}
