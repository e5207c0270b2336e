package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dailyforge/journal_backend/internal/apperrors"
	"github.com/dailyforge/journal_backend/internal/core/domain"
	portsrepo "github.com/dailyforge/journal_backend/internal/core/ports/repositories"
	"github.com/dailyforge/journal_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxEntryRepository persists entries in the entries table. The table carries
// a unique index on (created_by, entry_day), so a second same-day insert by
// the same subject is rejected by the store itself, not just by the service
// pre-check.
type PgxEntryRepository struct {
	BaseRepository
}

func newPgxEntryRepository(db *pgxpool.Pool) portsrepo.EntryRepositoryFacade {
	return &PgxEntryRepository{BaseRepository{Pool: db}}
}

// Ensure PgxEntryRepository implements portsrepo.EntryRepositoryFacade
var _ portsrepo.EntryRepositoryFacade = (*PgxEntryRepository)(nil)

func toModelEntry(d domain.Entry) models.Entry {
	return models.Entry{
		EntryID:       d.EntryID,
		Work:          d.Work,
		Struggle:      d.Struggle,
		Intention:     d.Intention,
		CreatedBy:     d.CreatedBy,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
		SchemaVersion: d.SchemaVersion,
	}
}

func toDomainEntry(m models.Entry) domain.Entry {
	return domain.Entry{
		EntryID:       m.EntryID,
		Work:          m.Work,
		Struggle:      m.Struggle,
		Intention:     m.Intention,
		CreatedBy:     m.CreatedBy,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		SchemaVersion: m.SchemaVersion,
	}
}

const entryColumns = `entry_id, work, struggle, intention, created_by, created_at, updated_at, schema_version`

func scanEntry(row pgx.Row) (models.Entry, error) {
	var m models.Entry
	err := row.Scan(
		&m.EntryID,
		&m.Work,
		&m.Struggle,
		&m.Intention,
		&m.CreatedBy,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.SchemaVersion,
	)
	return m, err
}

func (r *PgxEntryRepository) SaveEntry(ctx context.Context, entry domain.Entry) error {
	m := toModelEntry(entry)
	query := `
        INSERT INTO entries (entry_id, work, struggle, intention, created_by, created_at, updated_at, schema_version)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.EntryID,
		m.Work,
		m.Struggle,
		m.Intention,
		m.CreatedBy,
		m.CreatedAt,
		m.UpdatedAt,
		m.SchemaVersion,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("entry for this day already exists: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save entry: %w", classifyStoreError(err))
	}
	return nil
}

func (r *PgxEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE entry_id = $1;`

	var m models.Entry
	err := withReadRetry(ctx, func(ctx context.Context) error {
		var scanErr error
		m, scanErr = scanEntry(r.Pool.QueryRow(ctx, query, entryID))
		if scanErr != nil {
			if errors.Is(scanErr, pgx.ErrNoRows) {
				return apperrors.ErrNotFound
			}
			return fmt.Errorf("failed to find entry by ID %s: %w", entryID, classifyStoreError(scanErr))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	d := toDomainEntry(m)
	return &d, nil
}

func (r *PgxEntryRepository) FindEntries(ctx context.Context) ([]domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries ORDER BY created_at DESC;`

	var entries []domain.Entry
	err := withReadRetry(ctx, func(ctx context.Context) error {
		rows, queryErr := r.Pool.Query(ctx, query)
		if queryErr != nil {
			return fmt.Errorf("failed to query entries: %w", classifyStoreError(queryErr))
		}
		defer rows.Close()

		entries = []domain.Entry{}
		for rows.Next() {
			m, scanErr := scanEntry(rows)
			if scanErr != nil {
				return fmt.Errorf("failed to scan entry row: %w", scanErr)
			}
			entries = append(entries, toDomainEntry(m))
		}
		if rows.Err() != nil {
			return fmt.Errorf("error iterating entry rows: %w", classifyStoreError(rows.Err()))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *PgxEntryRepository) FindEntryForDay(ctx context.Context, subject string, day time.Time) (*domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE created_by = $1 AND entry_day = $2;`

	var m models.Entry
	err := withReadRetry(ctx, func(ctx context.Context) error {
		var scanErr error
		m, scanErr = scanEntry(r.Pool.QueryRow(ctx, query, subject, day.UTC().Truncate(24*time.Hour)))
		if scanErr != nil {
			if errors.Is(scanErr, pgx.ErrNoRows) {
				return apperrors.ErrNotFound
			}
			return fmt.Errorf("failed to find entry for day: %w", classifyStoreError(scanErr))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	d := toDomainEntry(m)
	return &d, nil
}

func (r *PgxEntryRepository) UpdateEntry(ctx context.Context, entry domain.Entry) error {
	m := toModelEntry(entry)
	query := `
        UPDATE entries
        SET work = $1, struggle = $2, intention = $3, updated_at = $4
        WHERE entry_id = $5;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Work,
		m.Struggle,
		m.Intention,
		m.UpdatedAt,
		m.EntryID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update entry query: %w", classifyStoreError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("entry not found for update: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxEntryRepository) DeleteEntry(ctx context.Context, entryID string) error {
	query := `DELETE FROM entries WHERE entry_id = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", classifyStoreError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("entry not found for deletion: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxEntryRepository) DeleteAllEntries(ctx context.Context) (int64, error) {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM entries;`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete all entries: %w", classifyStoreError(err))
	}
	return cmdTag.RowsAffected(), nil
}
