package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dailyforge/journal_backend/internal/apperrors"
	"github.com/dailyforge/journal_backend/internal/core/domain"
	portsrepo "github.com/dailyforge/journal_backend/internal/core/ports/repositories"
	portssvc "github.com/dailyforge/journal_backend/internal/core/ports/services"
	"github.com/dailyforge/journal_backend/internal/dto"
	"github.com/dailyforge/journal_backend/internal/platform/cache"
	"github.com/dailyforge/journal_backend/internal/utils/validation"
)

// entryService is the business core of the application: it owns content
// validation, the one-entry-per-day rule, partial-update semantics and the
// list-cache invalidation discipline.
type entryService struct {
	entryRepo portsrepo.EntryRepositoryFacade
	listCache *cache.EntryListCache
}

// NewEntryService creates a new EntryService.
func NewEntryService(entryRepo portsrepo.EntryRepositoryFacade, listCache *cache.EntryListCache) portssvc.EntrySvcFacade {
	return &entryService{
		entryRepo: entryRepo,
		listCache: listCache,
	}
}

// Ensure entryService implements the portssvc.EntrySvcFacade interface
var _ portssvc.EntrySvcFacade = (*entryService)(nil)

// CreateEntry validates all three fields, enforces the same-day rule and
// persists the record. The pre-check gives a friendly conflict without
// touching an insert; the store's unique index closes the remaining race, so
// a concurrent duplicate surfaces as ErrDuplicate from SaveEntry as well.
func (s *entryService) CreateEntry(ctx context.Context, req dto.CreateEntryRequest, subject string) (*domain.Entry, error) {
	work, err := validation.CleanField("work", req.Work)
	if err != nil {
		return nil, err
	}
	struggle, err := validation.CleanField("struggle", req.Struggle)
	if err != nil {
		return nil, err
	}
	intention, err := validation.CleanField("intention", req.Intention)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	existing, err := s.entryRepo.FindEntryForDay(ctx, subject, now)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for same-day entry: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("an entry for today already exists: %w", apperrors.ErrDuplicate)
	}

	entry := domain.Entry{
		EntryID:       uuid.NewString(),
		Work:          work,
		Struggle:      struggle,
		Intention:     intention,
		CreatedBy:     subject,
		CreatedAt:     now,
		UpdatedAt:     now,
		SchemaVersion: domain.SchemaVersion,
	}

	if err := s.entryRepo.SaveEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create entry in service: %w", err)
	}

	s.listCache.Invalidate()
	return &entry, nil
}

// ListEntries returns every entry newest first, serving the memoized snapshot
// while it is fresh.
func (s *entryService) ListEntries(ctx context.Context) ([]domain.Entry, error) {
	if entries, ok := s.listCache.Get(); ok {
		return entries, nil
	}

	entries, err := s.entryRepo.FindEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	s.listCache.Set(entries)
	return entries, nil
}

// GetEntryByID retrieves one entry. A structurally invalid ID is reported as
// not-found, matching the lookup contract.
func (s *entryService) GetEntryByID(ctx context.Context, entryID string) (*domain.Entry, error) {
	if _, err := uuid.Parse(entryID); err != nil {
		return nil, fmt.Errorf("malformed entry ID %q: %w", entryID, apperrors.ErrNotFound)
	}

	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get entry by ID in service: %w", err)
	}
	return entry, nil
}

// UpdateEntry applies a partial update: only supplied fields change, each is
// revalidated, and updated_at advances unconditionally on success.
func (s *entryService) UpdateEntry(ctx context.Context, entryID string, req dto.UpdateEntryRequest) (*domain.Entry, error) {
	if _, err := uuid.Parse(entryID); err != nil {
		return nil, fmt.Errorf("%w: entry ID %q is not a valid UUID", apperrors.ErrValidation, entryID)
	}

	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find entry for update: %w", err)
	}

	if req.Work != nil {
		cleaned, err := validation.CleanField("work", *req.Work)
		if err != nil {
			return nil, err
		}
		entry.Work = cleaned
	}
	if req.Struggle != nil {
		cleaned, err := validation.CleanField("struggle", *req.Struggle)
		if err != nil {
			return nil, err
		}
		entry.Struggle = cleaned
	}
	if req.Intention != nil {
		cleaned, err := validation.CleanField("intention", *req.Intention)
		if err != nil {
			return nil, err
		}
		entry.Intention = cleaned
	}

	entry.UpdatedAt = time.Now().UTC()

	if err := s.entryRepo.UpdateEntry(ctx, *entry); err != nil {
		return nil, fmt.Errorf("failed to update entry in service: %w", err)
	}

	s.listCache.Invalidate()
	return entry, nil
}

// DeleteEntry removes one entry permanently.
func (s *entryService) DeleteEntry(ctx context.Context, entryID string) error {
	if _, err := uuid.Parse(entryID); err != nil {
		return fmt.Errorf("%w: entry ID %q is not a valid UUID", apperrors.ErrValidation, entryID)
	}

	if err := s.entryRepo.DeleteEntry(ctx, entryID); err != nil {
		return fmt.Errorf("failed to delete entry in service: %w", err)
	}

	s.listCache.Invalidate()
	return nil
}

// DeleteAllEntries removes every entry and returns how many were removed.
func (s *entryService) DeleteAllEntries(ctx context.Context) (int64, error) {
	count, err := s.entryRepo.DeleteAllEntries(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete all entries in service: %w", err)
	}

	s.listCache.Invalidate()
	return count, nil
}
