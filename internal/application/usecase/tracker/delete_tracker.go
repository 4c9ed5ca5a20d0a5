package tracker

import (
	"context"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
)

// DeleteTrackerInput represents the input for tracker deletion.
type DeleteTrackerInput struct {
	ID uuid.UUID
}

// DeleteTrackerUseCase handles tracker deletion. Completion records of
// the tracker are cascade-deleted in the same transaction; deleting a
// tracker that does not exist is a no-op.
type DeleteTrackerUseCase struct {
	trackerRepo adapter.TrackerRepository
}

// NewDeleteTrackerUseCase creates a new DeleteTrackerUseCase instance.
func NewDeleteTrackerUseCase(trackerRepo adapter.TrackerRepository) *DeleteTrackerUseCase {
	return &DeleteTrackerUseCase{
		trackerRepo: trackerRepo,
	}
}

// Execute performs the tracker deletion.
func (uc *DeleteTrackerUseCase) Execute(ctx context.Context, input DeleteTrackerInput) error {
	return uc.trackerRepo.Delete(ctx, input.ID)
}
