package record

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
)

// UncompleteTrackerInput represents the input for un-marking a day.
type UncompleteTrackerInput struct {
	TrackerID uuid.UUID
	Date      time.Time
}

// UncompleteTrackerUseCase removes the completion record for a
// (tracker, day) pair. The delete targets all records for the pair so
// duplicates left by older data are cleaned up as well.
type UncompleteTrackerUseCase struct {
	recordRepo adapter.RecordRepository
}

// NewUncompleteTrackerUseCase creates a new UncompleteTrackerUseCase instance.
func NewUncompleteTrackerUseCase(recordRepo adapter.RecordRepository) *UncompleteTrackerUseCase {
	return &UncompleteTrackerUseCase{
		recordRepo: recordRepo,
	}
}

// Execute performs the removal.
func (uc *UncompleteTrackerUseCase) Execute(ctx context.Context, input UncompleteTrackerInput) error {
	return uc.recordRepo.DeleteForDay(ctx, input.TrackerID, entity.DayOf(input.Date))
}
