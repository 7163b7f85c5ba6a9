package usecase

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	cardDomain "github.com/allisson/cardcheck/internal/card/domain"
	cardService "github.com/allisson/cardcheck/internal/card/service"
	apperrors "github.com/allisson/cardcheck/internal/errors"
)

const utf8BOM = "\ufeff"

// batchUseCase implements BatchUseCase on top of ValidationUseCase.
type batchUseCase struct {
	validationUseCase ValidationUseCase
	logger            *slog.Logger
}

// ValidateFile validates every row of the CSV file at path.
func (b *batchUseCase) ValidateFile(
	ctx context.Context,
	path string,
	audit bool,
) ([]*cardDomain.BatchResult, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperrors.Wrap(cardDomain.ErrSourceNotFound, path)
		}
		return nil, apperrors.Wrap(err, "failed to open batch source")
	}
	defer func() {
		_ = file.Close()
	}()

	return b.ValidateReader(ctx, file, audit)
}

// ValidateReader validates every row read from r. Rows are numbered from 2, the
// header being row 1.
func (b *batchUseCase) ValidateReader(
	ctx context.Context,
	r io.Reader,
	audit bool,
) ([]*cardDomain.BatchResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	column, err := cardNumberColumn(reader)
	if err != nil {
		return nil, err
	}

	results := make([]*cardDomain.BatchResult, 0)
	for row := 2; ; row++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fields, err := reader.Read()
		if err == io.EOF {
			break
		}

		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			results = append(results, &cardDomain.BatchResult{
				Row:   row,
				Brand: cardDomain.BrandUnknown,
				Err:   apperrors.Wrap(apperrors.ErrInvalidInput, parseErr.Error()),
			})
			b.logger.Warn("malformed batch row", slog.Int("row", row), slog.Any("error", parseErr))
			continue
		}
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to read batch source")
		}

		results = append(results, b.validateRow(ctx, row, fieldAt(fields, column), audit))
	}

	summary := cardDomain.Summarize(results)
	b.logger.Info("batch validated",
		slog.Int("total", summary.Total),
		slog.Int("valid", summary.Valid),
		slog.Int("invalid", summary.Invalid),
		slog.Int("errors", summary.Errors),
	)

	return results, nil
}

func (b *batchUseCase) validateRow(
	ctx context.Context,
	row int,
	cardNumber string,
	audit bool,
) *cardDomain.BatchResult {
	result := &cardDomain.BatchResult{Row: row, CardNumber: cardNumber}

	outcome, err := b.validationUseCase.Validate(ctx, cardNumber, audit)
	if err != nil {
		result.Brand = cardDomain.BrandUnknown
		result.Err = err
		b.logger.Warn("invalid batch row",
			slog.Int("row", row),
			slog.String("card_last4", cardService.LastFour(cardNumber)),
			slog.Any("error", err),
		)
		return result
	}

	result.Valid = outcome.Valid
	result.Brand = outcome.Brand
	result.Audited = outcome.Audited
	b.logger.Debug("batch row validated",
		slog.Int("row", row),
		slog.String("card_last4", cardService.LastFour(cardNumber)),
		slog.Bool("valid", outcome.Valid),
	)

	return result
}

// cardNumberColumn reads the header and returns the index of the card_number column.
func cardNumberColumn(reader *csv.Reader) (int, error) {
	header, err := reader.Read()
	if err == io.EOF {
		return 0, apperrors.Wrap(cardDomain.ErrMissingCardNumberColumn, "empty source")
	}
	if err != nil {
		return 0, apperrors.Wrap(cardDomain.ErrMissingCardNumberColumn, err.Error())
	}

	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		if strings.TrimSpace(name) == cardDomain.CardNumberColumn {
			return i, nil
		}
	}

	return 0, cardDomain.ErrMissingCardNumberColumn
}

func fieldAt(fields []string, index int) string {
	if index >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[index])
}

// NewBatchUseCase creates a new BatchUseCase.
func NewBatchUseCase(validationUseCase ValidationUseCase, logger *slog.Logger) BatchUseCase {
	return &batchUseCase{
		validationUseCase: validationUseCase,
		logger:            logger,
	}
}
