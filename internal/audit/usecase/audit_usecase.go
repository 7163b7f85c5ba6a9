package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	auditDomain "github.com/allisson/cardcheck/internal/audit/domain"
	auditService "github.com/allisson/cardcheck/internal/audit/service"
	apperrors "github.com/allisson/cardcheck/internal/errors"
)

const unknownCardType = "Unknown"

// auditUseCase implements AuditUseCase.
type auditUseCase struct {
	hasher     auditService.Hasher
	recordRepo RecordRepository
	now        func() time.Time
}

// Record computes the digest of cardNumber and appends a record to the repository.
// The timestamp is taken from the local clock.
func (a *auditUseCase) Record(
	ctx context.Context,
	cardNumber string,
	valid bool,
	cardType string,
) (*auditDomain.Record, error) {
	if cardType == "" {
		cardType = unknownCardType
	}

	record := &auditDomain.Record{
		ID:         uuid.Must(uuid.NewV7()),
		Timestamp:  a.now(),
		CardHash:   a.hasher.Hash([]byte(cardNumber)),
		IsValid:    valid,
		CardType:   cardType,
		CardLength: len(cardNumber),
	}

	if err := a.recordRepo.Append(ctx, record); err != nil {
		if !apperrors.Is(err, auditDomain.ErrAuditWriteFailed) {
			err = fmt.Errorf("%w: %w", auditDomain.ErrAuditWriteFailed, err)
		}
		return nil, err
	}

	return record, nil
}

// List retrieves audit records with pagination.
func (a *auditUseCase) List(ctx context.Context, offset, limit int) ([]*auditDomain.Record, error) {
	if offset < 0 || limit < 1 {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "offset must be >= 0 and limit >= 1")
	}

	records, err := a.recordRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list audit records")
	}

	return records, nil
}

// NewAuditUseCase creates a new AuditUseCase with the provided dependencies.
func NewAuditUseCase(hasher auditService.Hasher, recordRepo RecordRepository) AuditUseCase {
	return &auditUseCase{
		hasher:     hasher,
		recordRepo: recordRepo,
		now:        time.Now,
	}
}
