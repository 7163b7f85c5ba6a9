// Package repository implements audit record persistence for a CSV file,
// PostgreSQL and MySQL.
package repository

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"slices"
	"sync"

	auditDomain "github.com/allisson/cardcheck/internal/audit/domain"
	apperrors "github.com/allisson/cardcheck/internal/errors"
)

// CSVRecordRepository appends audit records to a CSV file. The file is opened in
// append mode for every record and the header is written when the file is empty.
//
// Writers inside one process are serialized. Several processes writing the same
// file are not coordinated; run a single writer per file.
type CSVRecordRepository struct {
	path string
	mu   sync.Mutex
}

// Append writes the record as one CSV row, preceded by the header when the file is
// new or empty. Header and row go out in a single write call.
func (c *CSVRecordRepository) Append(ctx context.Context, record *auditDomain.Record) error {
	if err := ctx.Err(); err != nil {
		return writeFailed("append", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	file, err := os.OpenFile(c.path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o600)
	if err != nil {
		return writeFailed("open", err)
	}
	defer func() {
		_ = file.Close()
	}()

	info, err := file.Stat()
	if err != nil {
		return writeFailed("stat", err)
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if info.Size() == 0 {
		if err := writer.Write(auditDomain.Header); err != nil {
			return writeFailed("encode header", err)
		}
	}
	if err := writer.Write(record.Fields()); err != nil {
		return writeFailed("encode record", err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return writeFailed("encode record", err)
	}

	if _, err := file.Write(buf.Bytes()); err != nil {
		return writeFailed("write", err)
	}

	if err := file.Close(); err != nil {
		return writeFailed("close", err)
	}

	return nil
}

// List reads records in file order. A missing file is an empty log.
func (c *CSVRecordRepository) List(ctx context.Context, offset, limit int) ([]*auditDomain.Record, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	records := make([]*auditDomain.Record, 0)

	file, err := os.Open(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return records, nil
		}
		return nil, apperrors.Wrap(err, "failed to open audit log")
	}
	defer func() {
		_ = file.Close()
	}()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = len(auditDomain.Header)

	header, err := reader.Read()
	if err == io.EOF {
		return records, nil
	}
	if err != nil || !slices.Equal(header, auditDomain.Header) {
		return nil, apperrors.Wrap(auditDomain.ErrMalformedAuditLog, "unexpected header")
	}

	for index := 0; len(records) < limit; index++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, apperrors.Wrap(auditDomain.ErrMalformedAuditLog, err.Error())
		}
		if index < offset {
			continue
		}

		record, err := auditDomain.ParseRecord(fields)
		if err != nil {
			line, _ := reader.FieldPos(0)
			return nil, apperrors.Wrapf(err, "line %d", line)
		}
		records = append(records, record)
	}

	return records, nil
}

func writeFailed(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", auditDomain.ErrAuditWriteFailed, op, err)
}

// NewCSVRecordRepository creates a CSV audit repository writing to path.
func NewCSVRecordRepository(path string) *CSVRecordRepository {
	return &CSVRecordRepository{path: path}
}
