package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	cardDomain "github.com/allisson/cardcheck/internal/card/domain"
	cardService "github.com/allisson/cardcheck/internal/card/service"
	cardUseCase "github.com/allisson/cardcheck/internal/card/usecase"
)

type batchRowOutput struct {
	Row          int    `json:"row"`
	MaskedNumber string `json:"masked_number"`
	Valid        bool   `json:"valid"`
	Brand        string `json:"brand"`
	Audited      bool   `json:"audited"`
	Error        string `json:"error,omitempty"`
}

type batchOutput struct {
	Results []batchRowOutput `json:"results"`
	Total   int              `json:"total"`
	Valid   int              `json:"valid"`
	Invalid int              `json:"invalid"`
	Errors  int              `json:"errors"`
}

// RunValidateBatch validates every row of a CSV file with a card_number column.
// A missing file or column aborts the run; row failures are reported per row.
func RunValidateBatch(
	ctx context.Context,
	batchUseCase cardUseCase.BatchUseCase,
	logger *slog.Logger,
	writer io.Writer,
	path string,
	audit bool,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	logger.Info("validating batch", slog.String("file", path), slog.Bool("audit", audit))

	results, err := batchUseCase.ValidateFile(ctx, path, audit)
	if err != nil {
		return fmt.Errorf("failed to validate batch: %w", err)
	}

	summary := cardDomain.Summarize(results)
	output := batchOutput{
		Results: make([]batchRowOutput, 0, len(results)),
		Total:   summary.Total,
		Valid:   summary.Valid,
		Invalid: summary.Invalid,
		Errors:  summary.Errors,
	}
	for _, result := range results {
		row := batchRowOutput{
			Row:          result.Row,
			MaskedNumber: cardService.MaskCardNumber(result.CardNumber),
			Valid:        result.Valid,
			Brand:        result.Brand.String(),
			Audited:      result.Audited,
		}
		if result.Err != nil {
			row.Error = result.Err.Error()
		}
		output.Results = append(output.Results, row)
	}

	if format == "json" {
		return writeJSON(writer, output)
	}

	for _, row := range output.Results {
		if row.Error != "" {
			_, _ = fmt.Fprintf(writer, "row %d: %s ERROR %s\n", row.Row, row.MaskedNumber, row.Error)
			continue
		}
		_, _ = fmt.Fprintf(writer, "row %d: %s %s (%s)\n", row.Row, row.MaskedNumber, validityLabel(row.Valid), row.Brand)
	}
	_, _ = fmt.Fprintf(writer, "\nTotal: %d  Valid: %d  Invalid: %d  Errors: %d\n",
		output.Total, output.Valid, output.Invalid, output.Errors)

	return nil
}
