package usecase

import (
	"context"
	"log/slog"

	cardDomain "github.com/allisson/cardcheck/internal/card/domain"
	cardService "github.com/allisson/cardcheck/internal/card/service"
)

// validationUseCase implements ValidationUseCase.
type validationUseCase struct {
	validator  cardService.Validator
	classifier cardService.Classifier
	recorder   AuditRecorder
	logger     *slog.Logger
}

// Validate checks the candidate and optionally records the result. A nil recorder
// disables auditing regardless of the audit flag.
func (v *validationUseCase) Validate(
	ctx context.Context,
	cardNumber string,
	audit bool,
) (*cardDomain.Outcome, error) {
	valid, err := v.validator.Validate(cardNumber)
	if err != nil {
		return nil, err
	}

	outcome := &cardDomain.Outcome{
		Valid:  valid,
		Brand:  v.classifier.Classify(cardNumber),
		Length: len(cardNumber),
	}

	if !audit || v.recorder == nil {
		return outcome, nil
	}

	record, err := v.recorder.Record(ctx, cardNumber, valid, outcome.Brand.String())
	if err != nil {
		v.logger.Error("failed to record validation",
			slog.String("card_last4", cardService.LastFour(cardNumber)),
			slog.Bool("valid", valid),
			slog.Any("error", err),
		)
		return outcome, nil
	}

	outcome.Audited = true
	v.logger.Debug("validation recorded",
		slog.String("card_hash_prefix", record.CardHash[:min(8, len(record.CardHash))]),
		slog.Bool("valid", valid),
	)

	return outcome, nil
}

// NewValidationUseCase creates a new ValidationUseCase. recorder may be nil when
// auditing is disabled.
func NewValidationUseCase(
	validator cardService.Validator,
	classifier cardService.Classifier,
	recorder AuditRecorder,
	logger *slog.Logger,
) ValidationUseCase {
	return &validationUseCase{
		validator:  validator,
		classifier: classifier,
		recorder:   recorder,
		logger:     logger,
	}
}
