// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/valueobject"
)

// MaxTrackerTitleLength is the maximum allowed length, in characters,
// of a tracker title.
const MaxTrackerTitleLength = 38

// Tracker represents a recurring habit the user wants to keep up with.
// A tracker always belongs to exactly one category; the owning category
// title is carried by the persistence layer, not by the entity itself.
type Tracker struct {
	ID        uuid.UUID
	Title     string
	Emoji     string
	Color     valueobject.Color
	Schedule  Schedule
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTracker creates a new Tracker entity with a fresh identity.
// Validation is applied in the application layer before persisting.
func NewTracker(title, emoji string, color valueobject.Color, schedule Schedule) *Tracker {
	now := time.Now().UTC()

	return &Tracker{
		ID:        uuid.New(),
		Title:     title,
		Emoji:     emoji,
		Color:     color,
		Schedule:  schedule.Normalized(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// TitleLength returns the tracker title length in characters, not bytes,
// so multi-byte titles count the way the user perceives them.
func (t *Tracker) TitleLength() int {
	return utf8.RuneCountInString(t.Title)
}

// Equal reports identity equality: two trackers are the same tracker
// when their IDs match, regardless of field values.
func (t *Tracker) Equal(other *Tracker) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.ID == other.ID
}
