package tracker

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// UpdateTrackerInput represents the input for tracker editing. All
// mutable fields are replaced; CategoryTitle names the tracker's owning
// category after the update (same title means no move).
type UpdateTrackerInput struct {
	ID            uuid.UUID
	Title         string
	Emoji         string
	Color         string
	Schedule      entity.Schedule
	CategoryTitle string
}

// UpdateTrackerOutput represents the output of tracker editing.
type UpdateTrackerOutput struct {
	Tracker       *entity.Tracker
	CategoryTitle string
}

// UpdateTrackerUseCase handles tracker editing, including the atomic
// move between categories.
type UpdateTrackerUseCase struct {
	trackerRepo adapter.TrackerRepository
}

// NewUpdateTrackerUseCase creates a new UpdateTrackerUseCase instance.
func NewUpdateTrackerUseCase(trackerRepo adapter.TrackerRepository) *UpdateTrackerUseCase {
	return &UpdateTrackerUseCase{
		trackerRepo: trackerRepo,
	}
}

// Execute performs the tracker update.
func (uc *UpdateTrackerUseCase) Execute(ctx context.Context, input UpdateTrackerInput) (*UpdateTrackerOutput, error) {
	color, err := validateTrackerFields(input.Title, input.Emoji, input.Color, input.Schedule)
	if err != nil {
		return nil, err
	}
	if input.CategoryTitle == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryTitleEmpty,
			"category title must not be empty",
			domainerror.ErrCategoryTitleEmpty,
		)
	}

	existing, _, err := uc.trackerRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	existing.Title = input.Title
	existing.Emoji = input.Emoji
	existing.Color = color
	existing.Schedule = input.Schedule.Normalized()
	existing.UpdatedAt = time.Now().UTC()

	if err := uc.trackerRepo.Update(ctx, existing, input.CategoryTitle); err != nil {
		return nil, err
	}

	return &UpdateTrackerOutput{Tracker: existing, CategoryTitle: input.CategoryTitle}, nil
}
