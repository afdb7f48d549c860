// Package database provides SQLite-backed storage for generated
// panchangam calendar entries.
package database

import (
	"time"
)

// EntryKind defines the category of a calendar entry.
type EntryKind string

const (
	EntryKindPanchangam EntryKind = "panchangam"
	EntryKindFestival   EntryKind = "festival"
	EntryKindVratam     EntryKind = "vratam"
	EntryKindManual     EntryKind = "manual"
)

// ValidEntryKinds returns all valid entry kinds.
func ValidEntryKinds() []EntryKind {
	return []EntryKind{
		EntryKindPanchangam,
		EntryKindFestival,
		EntryKindVratam,
		EntryKindManual,
	}
}

// IsValid checks if an entry kind is valid.
func (k EntryKind) IsValid() bool {
	for _, valid := range ValidEntryKinds() {
		if k == valid {
			return true
		}
	}
	return false
}

// CalendarEntry represents a single stored calendar item.
// Day-granular kinds (panchangam, festival, dated manual events) leave
// StartAt and EndAt nil; vratams and timed manual events carry the span.
type CalendarEntry struct {
	ID          int64      `json:"id"`
	EntryKey    string     `json:"entry_key"`
	LocationKey string     `json:"location_key"`
	Kind        EntryKind  `json:"kind"`
	Date        string     `json:"date"` // ISO 8601 format: YYYY-MM-DD
	StartAt     *time.Time `json:"start_at,omitempty"`
	EndAt       *time.Time `json:"end_at,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// StoredLocation represents one observation point calendars are
// generated for.
type StoredLocation struct {
	Key       string  `json:"key"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
	Style     string  `json:"style"`
	Lang      string  `json:"lang"`
}
