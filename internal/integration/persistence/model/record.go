package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// TrackerRecordModel represents the tracker_records table. The unique
// index on (tracker_id, date) is the store-level guarantee that a day
// is marked done at most once per tracker.
type TrackerRecordModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	TrackerID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_tracker_records_day"`
	Date      time.Time `gorm:"not null;uniqueIndex:idx_tracker_records_day"`
}

// TableName returns the table name for the TrackerRecordModel.
func (TrackerRecordModel) TableName() string {
	return "tracker_records"
}

// ToEntity converts a TrackerRecordModel to a domain CompletionRecord.
func (m *TrackerRecordModel) ToEntity() *entity.CompletionRecord {
	return &entity.CompletionRecord{
		TrackerID: m.TrackerID,
		Date:      entity.DayOf(m.Date),
	}
}

// RecordFromEntity creates a TrackerRecordModel from a domain
// CompletionRecord.
func RecordFromEntity(record *entity.CompletionRecord) *TrackerRecordModel {
	return &TrackerRecordModel{
		TrackerID: record.TrackerID,
		Date:      entity.DayOf(record.Date),
	}
}
