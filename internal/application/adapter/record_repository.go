package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// RecordRepository defines the interface for completion record persistence.
type RecordRepository interface {
	// Create inserts a completion record. A record for the same
	// (tracker, day) pair yields domainerror.ErrRecordAlreadyExists.
	Create(ctx context.Context, record *entity.CompletionRecord) error

	// DeleteForDay removes every record for the (tracker, day) pair.
	// Deleting a pair with no records is a no-op.
	DeleteForDay(ctx context.Context, trackerID uuid.UUID, day time.Time) error

	// DeleteAllForTracker removes every record of the tracker. Used as
	// the cascade when a tracker is deleted.
	DeleteAllForTracker(ctx context.Context, trackerID uuid.UUID) error

	// IsCompleted reports whether a record exists for the (tracker, day) pair.
	IsCompleted(ctx context.Context, trackerID uuid.UUID, day time.Time) (bool, error)

	// CountByTracker returns the lifetime number of completion records
	// for the tracker.
	CountByTracker(ctx context.Context, trackerID uuid.UUID) (int, error)

	// CountAll returns the total number of completion records in the store.
	CountAll(ctx context.Context) (int, error)

	// FindAll retrieves every completion record.
	FindAll(ctx context.Context) ([]*entity.CompletionRecord, error)
}
