package model

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
	"github.com/habit-tracker/backend/internal/domain/valueobject"
)

// TrackerModel represents the trackers table.
type TrackerModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title         string    `gorm:"type:varchar(38);not null"`
	Emoji         string    `gorm:"type:varchar(16);not null"`
	Color         string    `gorm:"type:varchar(7);not null"`
	Schedule      string    `gorm:"type:varchar(32);not null"`
	CategoryTitle string    `gorm:"type:varchar(100);not null;index"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName returns the table name for the TrackerModel.
func (TrackerModel) TableName() string {
	return "trackers"
}

// ToEntity converts a TrackerModel to a domain Tracker entity. A color
// string that no longer decodes falls back to the default gray rather
// than failing the read; losing a swatch is cosmetic.
func (m *TrackerModel) ToEntity() *entity.Tracker {
	color, err := valueobject.ColorFromHex(m.Color)
	if err != nil {
		color = valueobject.DefaultColor()
	}

	return &entity.Tracker{
		ID:        m.ID,
		Title:     m.Title,
		Emoji:     m.Emoji,
		Color:     color,
		Schedule:  ScheduleFromColumn(m.Schedule),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// TrackerFromEntity creates a TrackerModel from a domain Tracker entity.
func TrackerFromEntity(tracker *entity.Tracker, categoryTitle string) *TrackerModel {
	return &TrackerModel{
		ID:            tracker.ID,
		Title:         tracker.Title,
		Emoji:         tracker.Emoji,
		Color:         tracker.Color.Hex(),
		Schedule:      ScheduleToColumn(tracker.Schedule),
		CategoryTitle: categoryTitle,
		CreatedAt:     tracker.CreatedAt,
		UpdatedAt:     tracker.UpdatedAt,
	}
}

// ScheduleToColumn encodes a schedule as comma-joined weekday numbers
// in enum (Monday-first) order, e.g. "1,3,5".
func ScheduleToColumn(schedule entity.Schedule) string {
	normalized := schedule.Normalized()
	parts := make([]string, len(normalized))
	for i, d := range normalized {
		parts[i] = strconv.Itoa(int(d))
	}
	return strings.Join(parts, ",")
}

// ScheduleFromColumn decodes the column form produced by
// ScheduleToColumn. Unknown values are dropped rather than failing the
// whole read.
func ScheduleFromColumn(column string) entity.Schedule {
	if column == "" {
		return entity.Schedule{}
	}

	schedule := make(entity.Schedule, 0, 7)
	for _, part := range strings.Split(column, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		day := entity.WeekDay(n)
		if day.IsValid() {
			schedule = append(schedule, day)
		}
	}
	return schedule.Normalized()
}
