// Package usecase orchestrates card validation: the Luhn check, brand
// classification, optional audit recording and CSV batch processing.
package usecase

import (
	"context"
	"io"

	auditDomain "github.com/allisson/cardcheck/internal/audit/domain"
	cardDomain "github.com/allisson/cardcheck/internal/card/domain"
)

// AuditRecorder persists the digest of a validated card number.
type AuditRecorder interface {
	Record(ctx context.Context, cardNumber string, valid bool, cardType string) (*auditDomain.Record, error)
}

// ValidationUseCase validates single card numbers.
type ValidationUseCase interface {
	// Validate runs the Luhn check and classifies the candidate. When audit is true
	// the validation is recorded; a recording failure is logged and reported through
	// Outcome.Audited, never as an error. Malformed candidates fail with an error
	// wrapping domain.ErrInvalidCardNumber and are not recorded.
	Validate(ctx context.Context, cardNumber string, audit bool) (*cardDomain.Outcome, error)
}

// BatchUseCase validates every row of a CSV source with a card_number column.
type BatchUseCase interface {
	// ValidateFile opens path and validates its rows. A missing file fails with
	// domain.ErrSourceNotFound before any row is processed.
	ValidateFile(ctx context.Context, path string, audit bool) ([]*cardDomain.BatchResult, error)

	// ValidateReader validates rows read from r. A header without card_number fails
	// with domain.ErrMissingCardNumberColumn. Row-level problems are reported in
	// BatchResult.Err and never abort the batch.
	ValidateReader(ctx context.Context, r io.Reader, audit bool) ([]*cardDomain.BatchResult, error)
}
