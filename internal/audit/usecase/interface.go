// Package usecase defines the audit trail business logic and the persistence
// contract it depends on.
package usecase

import (
	"context"

	auditDomain "github.com/allisson/cardcheck/internal/audit/domain"
)

// RecordRepository persists audit records in an append-only store.
type RecordRepository interface {
	// Append adds the record at the end of the store. Failures are reported as
	// errors wrapping domain.ErrAuditWriteFailed.
	Append(ctx context.Context, record *auditDomain.Record) error

	// List returns records in append order starting at offset.
	List(ctx context.Context, offset, limit int) ([]*auditDomain.Record, error)
}

// AuditUseCase records validations without ever persisting the card number.
type AuditUseCase interface {
	// Record hashes cardNumber, builds a record with the outcome, card type and
	// length, and appends it. An empty cardType is stored as "Unknown". The card
	// number is only held for the duration of the call.
	Record(ctx context.Context, cardNumber string, valid bool, cardType string) (*auditDomain.Record, error)

	// List returns stored records in append order.
	List(ctx context.Context, offset, limit int) ([]*auditDomain.Record, error)
}
