// Package record contains completion record use cases.
package record

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// CompleteTrackerInput represents the input for marking a tracker done.
type CompleteTrackerInput struct {
	TrackerID uuid.UUID
	Date      time.Time
}

// CompleteTrackerOutput represents the output of marking a tracker done.
type CompleteTrackerOutput struct {
	Record *entity.CompletionRecord
}

// CompleteTrackerUseCase records that a tracker was performed on a
// calendar day. Days after today are always rejected; a second record
// for the same (tracker, day) pair is rejected as a duplicate. The
// duplicate check is enforced here and by the store's unique index, so
// every code path shares one behavior.
type CompleteTrackerUseCase struct {
	recordRepo adapter.RecordRepository

	// now is replaceable in tests.
	now func() time.Time
}

// NewCompleteTrackerUseCase creates a new CompleteTrackerUseCase instance.
func NewCompleteTrackerUseCase(recordRepo adapter.RecordRepository) *CompleteTrackerUseCase {
	return &CompleteTrackerUseCase{
		recordRepo: recordRepo,
		now:        time.Now,
	}
}

// Execute performs the completion.
func (uc *CompleteTrackerUseCase) Execute(ctx context.Context, input CompleteTrackerInput) (*CompleteTrackerOutput, error) {
	day := entity.DayOf(input.Date)
	today := entity.DayOf(uc.now())

	if day.After(today) {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeFutureDate,
			"cannot mark a tracker complete for a future day",
			domainerror.ErrFutureDate,
		)
	}

	rec := entity.NewCompletionRecord(input.TrackerID, day)
	if err := uc.recordRepo.Create(ctx, rec); err != nil {
		return nil, err
	}

	return &CompleteTrackerOutput{Record: rec}, nil
}
