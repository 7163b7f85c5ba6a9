package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	auditDomain "github.com/allisson/cardcheck/internal/audit/domain"
	"github.com/allisson/cardcheck/internal/testutil"
)

type sqlRecordRepository interface {
	Append(ctx context.Context, record *auditDomain.Record) error
	List(ctx context.Context, offset, limit int) ([]*auditDomain.Record, error)
}

func TestSQLRecordRepositories_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tests := []struct {
		name    string
		skip    func(t *testing.T)
		setup   func(t *testing.T) *sql.DB
		newRepo func(db *sql.DB) sqlRecordRepository
	}{
		{
			name:    "postgres",
			skip:    testutil.SkipIfNoPostgres,
			setup:   testutil.SetupPostgresDB,
			newRepo: func(db *sql.DB) sqlRecordRepository { return NewPostgreSQLRecordRepository(db) },
		},
		{
			name:    "mysql",
			skip:    testutil.SkipIfNoMySQL,
			setup:   testutil.SetupMySQLDB,
			newRepo: func(db *sql.DB) sqlRecordRepository { return NewMySQLRecordRepository(db) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.skip(t)
			db := tt.setup(t)
			defer testutil.TeardownDB(t, db)

			repo := tt.newRepo(db)
			ctx := context.Background()
			base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

			hashes := []string{
				"6099154214406cce6105a4688ab66533d3a55d1d7dd393cbccf22b487a22d922",
				"48a88b117b1788c1380b86c195e7ad52b111984aa619289652ee36339da9fbec",
				"6099154214406cce6105a4688ab66533d3a55d1d7dd393cbccf22b487a22d922",
			}
			ids := make([]uuid.UUID, len(hashes))
			for i, hash := range hashes {
				ids[i] = uuid.Must(uuid.NewV7())
				require.NoError(t, repo.Append(ctx, &auditDomain.Record{
					ID:         ids[i],
					Timestamp:  base.Add(time.Duration(i) * time.Second),
					CardHash:   hash,
					IsValid:    i != 1,
					CardType:   "Visa",
					CardLength: 16,
				}))
			}

			records, err := repo.List(ctx, 0, 10)
			require.NoError(t, err)
			require.Len(t, records, 3)
			for i, record := range records {
				assert.Equal(t, ids[i], record.ID)
				assert.Equal(t, hashes[i], record.CardHash)
				assert.True(t, record.Timestamp.Equal(base.Add(time.Duration(i)*time.Second)))
			}
			assert.False(t, records[1].IsValid)

			page, err := repo.List(ctx, 1, 1)
			require.NoError(t, err)
			require.Len(t, page, 1)
			assert.Equal(t, ids[1], page[0].ID)
		})
	}
}
