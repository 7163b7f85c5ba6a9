package repository

import (
	"context"
	"database/sql"

	auditDomain "github.com/allisson/cardcheck/internal/audit/domain"
	apperrors "github.com/allisson/cardcheck/internal/errors"
)

// PostgreSQLRecordRepository stores audit records in the validation_audit_logs
// table using native UUID and TIMESTAMPTZ columns.
type PostgreSQLRecordRepository struct {
	db *sql.DB
}

// Append inserts the record. Insert failures wrap domain.ErrAuditWriteFailed.
func (p *PostgreSQLRecordRepository) Append(ctx context.Context, record *auditDomain.Record) error {
	query := `INSERT INTO validation_audit_logs (id, card_hash, is_valid, card_type, card_length, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := p.db.ExecContext(
		ctx,
		query,
		record.ID,
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

// List retrieves records oldest first. UUIDv7 ids break ties between equal timestamps.
func (p *PostgreSQLRecordRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*auditDomain.Record, error) {
	query := `SELECT id, card_hash, is_valid, card_type, card_length, created_at
			  FROM validation_audit_logs
			  ORDER BY created_at ASC, id ASC
			  LIMIT $1 OFFSET $2`

	rows, err := p.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list audit records")
	}
	defer func() {
		_ = rows.Close()
	}()

	records := make([]*auditDomain.Record, 0)
	for rows.Next() {
		var record auditDomain.Record

		err := rows.Scan(
			&record.ID,
			&record.CardHash,
			&record.IsValid,
			&record.CardType,
			&record.CardLength,
			&record.Timestamp,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan audit record")
		}

		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate audit records")
	}

	return records, nil
}

// NewPostgreSQLRecordRepository creates a new PostgreSQL audit record repository.
func NewPostgreSQLRecordRepository(db *sql.DB) *PostgreSQLRecordRepository {
	return &PostgreSQLRecordRepository{db: db}
}
