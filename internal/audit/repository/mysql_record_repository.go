package repository

import (
	"context"
	"database/sql"

	auditDomain "github.com/allisson/cardcheck/internal/audit/domain"
	apperrors "github.com/allisson/cardcheck/internal/errors"
)

// MySQLRecordRepository stores audit records in the validation_audit_logs table.
// Record IDs are stored as BINARY(16).
type MySQLRecordRepository struct {
	db *sql.DB
}

// Append inserts the record. Insert failures wrap domain.ErrAuditWriteFailed.
func (m *MySQLRecordRepository) Append(ctx context.Context, record *auditDomain.Record) error {
	id, err := record.ID.MarshalBinary()
	if err != nil {
		return writeFailed("marshal id", err)
	}

	query := `INSERT INTO validation_audit_logs (id, card_hash, is_valid, card_type, card_length, created_at)
			  VALUES (?, ?, ?, ?, ?, ?)`

	_, err = m.db.ExecContext(
		ctx,
		query,
		id,
		record.CardHash,
		record.IsValid,
		record.CardType,
		record.CardLength,
		record.Timestamp,
	)
	if err != nil {
		return writeFailed("insert", err)
	}

	return nil
}

// List retrieves records oldest first.
func (m *MySQLRecordRepository) List(ctx context.Context, offset, limit int) ([]*auditDomain.Record, error) {
	query := `SELECT id, card_hash, is_valid, card_type, card_length, created_at
			  FROM validation_audit_logs
			  ORDER BY created_at ASC, id ASC
			  LIMIT ? OFFSET ?`

	rows, err := m.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list audit records")
	}
	defer func() {
		_ = rows.Close()
	}()

	records := make([]*auditDomain.Record, 0)
	for rows.Next() {
		var record auditDomain.Record
		var idBinary []byte

		err := rows.Scan(
			&idBinary,
			&record.CardHash,
			&record.IsValid,
			&record.CardType,
			&record.CardLength,
			&record.Timestamp,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan audit record")
		}

		if err := record.ID.UnmarshalBinary(idBinary); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal audit record id")
		}

		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate audit records")
	}

	return records, nil
}

// NewMySQLRecordRepository creates a new MySQL audit record repository.
func NewMySQLRecordRepository(db *sql.DB) *MySQLRecordRepository {
	return &MySQLRecordRepository{db: db}
}

