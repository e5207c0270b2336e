package domain

import "time"

// SchemaVersion is the fixed tag stored with every entry record for forward
// compatibility of the stored shape.
const SchemaVersion = "1.0"

// Entry is one daily journal record: what the author worked on, struggled
// with, and intends to do next. A subject may own at most one entry per
// calendar day (UTC).
type Entry struct {
	EntryID       string    `json:"entryID"`
	Work          string    `json:"work"`
	Struggle      string    `json:"struggle"`
	Intention     string    `json:"intention"`
	CreatedBy     string    `json:"createdBy"` // Subject reference from the verified token
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	SchemaVersion string    `json:"schemaVersion"`
}
