package models

import "time"

// Entry mirrors a row of the entries table.
type Entry struct {
	EntryID       string    `db:"entry_id"`
	Work          string    `db:"work"`
	Struggle      string    `db:"struggle"`
	Intention     string    `db:"intention"`
	CreatedBy     string    `db:"created_by"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
	SchemaVersion string    `db:"schema_version"`
}
