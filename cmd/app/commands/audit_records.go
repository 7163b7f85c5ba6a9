package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/google/uuid"

	auditDomain "github.com/allisson/cardcheck/internal/audit/domain"
	auditUseCase "github.com/allisson/cardcheck/internal/audit/usecase"
)

const timestampLayout = "2006-01-02 15:04:05"

type auditRecordOutput struct {
	ID         string `json:"id,omitempty"`
	Timestamp  string `json:"timestamp"`
	CardHash   string `json:"card_hash"`
	IsValid    bool   `json:"is_valid"`
	CardType   string `json:"card_type"`
	CardLength int    `json:"card_length"`
}

// RunListAuditRecords prints a page of audit records in append order.
func RunListAuditRecords(
	ctx context.Context,
	auditUseCase auditUseCase.AuditUseCase,
	logger *slog.Logger,
	writer io.Writer,
	offset, limit int,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	records, err := auditUseCase.List(ctx, offset, limit)
	if err != nil {
		return fmt.Errorf("failed to list audit records: %w", err)
	}

	logger.Debug("audit records listed", slog.Int("count", len(records)))

	if format == "json" {
		return writeJSON(writer, mapAuditRecords(records))
	}

	if len(records) == 0 {
		_, _ = fmt.Fprintln(writer, "No audit records found")
		return nil
	}

	tw := tabwriter.NewWriter(writer, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "TIMESTAMP\tCARD HASH\tVALID\tTYPE\tLENGTH")
	for _, record := range records {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n",
			record.Timestamp.Format(timestampLayout),
			record.CardHash,
			auditDomain.FormatValidity(record.IsValid),
			record.CardType,
			record.CardLength,
		)
	}
	return tw.Flush()
}

func mapAuditRecords(records []*auditDomain.Record) []auditRecordOutput {
	output := make([]auditRecordOutput, 0, len(records))
	for _, record := range records {
		item := auditRecordOutput{
			Timestamp:  record.Timestamp.Format(auditDomain.TimestampLayout),
			CardHash:   record.CardHash,
			IsValid:    record.IsValid,
			CardType:   record.CardType,
			CardLength: record.CardLength,
		}
		if record.ID != uuid.Nil {
			item.ID = record.ID.String()
		}
		output = append(output, item)
	}
	return output
}
