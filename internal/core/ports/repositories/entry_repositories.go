package repositories

import (
	"context"
	"time"

	"github.com/dailyforge/journal_backend/internal/core/domain"
)

// EntryReader defines read operations for entry data.
type EntryReader interface {
	// FindEntryByID retrieves a specific entry by its ID.
	FindEntryByID(ctx context.Context, entryID string) (*domain.Entry, error)

	// FindEntries retrieves every entry ordered by created_at descending.
	FindEntries(ctx context.Context) ([]domain.Entry, error)

	// FindEntryForDay retrieves the entry a subject created on the given
	// calendar day (UTC), or apperrors.ErrNotFound if there is none.
	FindEntryForDay(ctx context.Context, subject string, day time.Time) (*domain.Entry, error)
}

// EntryWriter defines write operations for entry data.
type EntryWriter interface {
	// SaveEntry persists a new entry. Returns apperrors.ErrDuplicate if the
	// subject already has an entry for that calendar day.
	SaveEntry(ctx context.Context, entry domain.Entry) error

	// UpdateEntry persists an already-mutated entry.
	UpdateEntry(ctx context.Context, entry domain.Entry) error
}

// EntryLifecycleManager defines operations that remove entry records.
type EntryLifecycleManager interface {
	// DeleteEntry removes an entry permanently. Returns apperrors.ErrNotFound
	// if no record matched.
	DeleteEntry(ctx context.Context, entryID string) error

	// DeleteAllEntries removes every entry and reports how many were removed.
	DeleteAllEntries(ctx context.Context) (int64, error)
}

// EntryRepositoryFacade combines all entry-related repository interfaces.
type EntryRepositoryFacade interface {
	EntryReader
	EntryWriter
	EntryLifecycleManager
}
