package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	cardService "github.com/allisson/cardcheck/internal/card/service"
	cardUseCase "github.com/allisson/cardcheck/internal/card/usecase"
)

type validateOutput struct {
	MaskedNumber string `json:"masked_number"`
	Valid        bool   `json:"valid"`
	Brand        string `json:"brand"`
	Length       int    `json:"length"`
	Audited      bool   `json:"audited"`
}

// RunValidate checks a single card number and prints the outcome. The number is
// only ever shown masked. A Luhn failure is a result, not an error.
func RunValidate(
	ctx context.Context,
	validationUseCase cardUseCase.ValidationUseCase,
	logger *slog.Logger,
	writer io.Writer,
	cardNumber string,
	audit bool,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	outcome, err := validationUseCase.Validate(ctx, cardNumber, audit)
	if err != nil {
		return fmt.Errorf("failed to validate card number: %w", err)
	}

	output := validateOutput{
		MaskedNumber: cardService.MaskCardNumber(cardNumber),
		Valid:        outcome.Valid,
		Brand:        outcome.Brand.String(),
		Length:       outcome.Length,
		Audited:      outcome.Audited,
	}

	if format == "json" {
		if err := writeJSON(writer, output); err != nil {
			return err
		}
	} else {
		_, _ = fmt.Fprintf(writer, "Card:    %s\n", output.MaskedNumber)
		_, _ = fmt.Fprintf(writer, "Result:  %s\n", validityLabel(output.Valid))
		_, _ = fmt.Fprintf(writer, "Brand:   %s\n", output.Brand)
		_, _ = fmt.Fprintf(writer, "Length:  %d\n", output.Length)
		_, _ = fmt.Fprintf(writer, "Audited: %t\n", output.Audited)
	}

	logger.Info("card validated",
		slog.String("card_last4", cardService.LastFour(cardNumber)),
		slog.Bool("valid", outcome.Valid),
		slog.Bool("audited", outcome.Audited),
	)

	return nil
}
