package services

import (
	"context"

	"github.com/dailyforge/journal_backend/internal/core/domain"
	"github.com/dailyforge/journal_backend/internal/dto"
)

// EntryReaderSvc defines read operations for entries.
type EntryReaderSvc interface {
	// GetEntryByID retrieves an entry by ID.
	GetEntryByID(ctx context.Context, entryID string) (*domain.Entry, error)

	// ListEntries retrieves all entries, newest first. The result set is
	// deliberately unpaginated.
	ListEntries(ctx context.Context) ([]domain.Entry, error)
}

// EntryWriterSvc defines write operations for entries.
type EntryWriterSvc interface {
	// CreateEntry validates and persists a new entry for the given subject.
	CreateEntry(ctx context.Context, req dto.CreateEntryRequest, subject string) (*domain.Entry, error)

	// UpdateEntry applies a partial update; only supplied fields change.
	UpdateEntry(ctx context.Context, entryID string, req dto.UpdateEntryRequest) (*domain.Entry, error)
}

// EntryLifecycleSvc defines operations that remove entries.
type EntryLifecycleSvc interface {
	// DeleteEntry removes one entry permanently.
	DeleteEntry(ctx context.Context, entryID string) error

	// DeleteAllEntries removes every entry and returns the removed count.
	DeleteAllEntries(ctx context.Context) (int64, error)
}

// EntrySvcFacade combines all entry-related service interfaces.
type EntrySvcFacade interface {
	EntryReaderSvc
	EntryWriterSvc
	EntryLifecycleSvc
}
