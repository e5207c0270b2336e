package dto

import (
	"time"

	"github.com/dailyforge/journal_backend/internal/core/domain"
)

// CreateEntryRequest carries the three reflection fields for a new entry.
// The nodenylist rule is registered in internal/utils/validation.
type CreateEntryRequest struct {
	Work      string `json:"work" binding:"required,max=256,nodenylist"`
	Struggle  string `json:"struggle" binding:"required,max=256,nodenylist"`
	Intention string `json:"intention" binding:"required,max=256,nodenylist"`
}

// UpdateEntryRequest defines the data allowed for a partial update.
// Pointers differentiate omitted fields from zero-value fields.
type UpdateEntryRequest struct {
	Work      *string `json:"work" binding:"omitempty,max=256,nodenylist"`
	Struggle  *string `json:"struggle" binding:"omitempty,max=256,nodenylist"`
	Intention *string `json:"intention" binding:"omitempty,max=256,nodenylist"`
}

// EntryResponse is the wire representation of a single entry.
type EntryResponse struct {
	EntryID       string    `json:"id"`
	Work          string    `json:"work"`
	Struggle      string    `json:"struggle"`
	Intention     string    `json:"intention"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	SchemaVersion string    `json:"schema_version"`
}

// ListEntriesResponse wraps the full entry list, newest first.
type ListEntriesResponse struct {
	Entries []EntryResponse `json:"entries"`
}

// DeleteAllEntriesResponse reports how many records a bulk delete removed.
type DeleteAllEntriesResponse struct {
	Deleted int64 `json:"deleted"`
}

// ToEntryResponse converts a domain.Entry to its response DTO.
func ToEntryResponse(e *domain.Entry) EntryResponse {
	return EntryResponse{
		EntryID:       e.EntryID,
		Work:          e.Work,
		Struggle:      e.Struggle,
		Intention:     e.Intention,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
		SchemaVersion: e.SchemaVersion,
	}
}

// ToListEntriesResponse converts a slice of domain entries to the list DTO.
func ToListEntriesResponse(entries []domain.Entry) ListEntriesResponse {
	responses := make([]EntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToEntryResponse(&entries[i])
	}
	return ListEntriesResponse{Entries: responses}
}
