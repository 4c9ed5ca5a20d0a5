package entity

import (
	"time"

	"github.com/google/uuid"
)

// CompletionRecord is evidence that a tracker was performed on a
// specific calendar day. At most one record exists per (tracker, day).
type CompletionRecord struct {
	TrackerID uuid.UUID
	Date      time.Time
}

// NewCompletionRecord creates a record for the given tracker and day.
// The date is normalized to day granularity.
func NewCompletionRecord(trackerID uuid.UUID, date time.Time) *CompletionRecord {
	return &CompletionRecord{
		TrackerID: trackerID,
		Date:      DayOf(date),
	}
}

// Equal reports value equality on (tracker, day).
func (r *CompletionRecord) Equal(other *CompletionRecord) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.TrackerID == other.TrackerID && r.Date.Equal(other.Date)
}

// DayOf truncates a timestamp to its calendar day in UTC. All record
// dates pass through here so that (tracker, day) comparisons never
// depend on time of day or sub-second noise.
func DayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
