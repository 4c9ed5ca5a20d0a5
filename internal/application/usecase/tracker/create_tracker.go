// Package tracker contains tracker-related use cases.
package tracker

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/domain/valueobject"
)

// CreateTrackerInput represents the input for tracker creation.
type CreateTrackerInput struct {
	Title         string
	Emoji         string
	Color         string // hex form, e.g. "#FD4C49"
	Schedule      entity.Schedule
	CategoryTitle string
}

// CreateTrackerOutput represents the output of tracker creation.
type CreateTrackerOutput struct {
	Tracker       *entity.Tracker
	CategoryTitle string
}

// CreateTrackerUseCase handles tracker creation. The target category is
// resolved (or created) together with the tracker insert, so a tracker
// can never exist without an owning category.
type CreateTrackerUseCase struct {
	trackerRepo adapter.TrackerRepository
}

// NewCreateTrackerUseCase creates a new CreateTrackerUseCase instance.
func NewCreateTrackerUseCase(trackerRepo adapter.TrackerRepository) *CreateTrackerUseCase {
	return &CreateTrackerUseCase{
		trackerRepo: trackerRepo,
	}
}

// Execute performs the tracker creation.
func (uc *CreateTrackerUseCase) Execute(ctx context.Context, input CreateTrackerInput) (*CreateTrackerOutput, error) {
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

	t := entity.NewTracker(input.Title, input.Emoji, color, input.Schedule)

	if err := uc.trackerRepo.Create(ctx, t, input.CategoryTitle); err != nil {
		return nil, err
	}

	return &CreateTrackerOutput{Tracker: t, CategoryTitle: input.CategoryTitle}, nil
}

// validateTrackerFields applies the validation contract shared by
// create and update: rejected input never reaches the store.
func validateTrackerFields(title, emoji, colorHex string, schedule entity.Schedule) (valueobject.Color, error) {
	if strings.TrimSpace(title) == "" {
		return valueobject.Color{}, domainerror.NewTrackerError(
			domainerror.ErrCodeTrackerTitleEmpty,
			"tracker title must not be empty",
			domainerror.ErrTrackerTitleEmpty,
		)
	}
	if utf8.RuneCountInString(title) > entity.MaxTrackerTitleLength {
		return valueobject.Color{}, domainerror.NewTrackerError(
			domainerror.ErrCodeTrackerTitleTooLong,
			fmt.Sprintf("tracker title must not exceed %d characters", entity.MaxTrackerTitleLength),
			domainerror.ErrTrackerTitleTooLong,
		)
	}
	if emoji == "" {
		return valueobject.Color{}, domainerror.NewTrackerError(
			domainerror.ErrCodeTrackerEmojiEmpty,
			"tracker emoji must not be empty",
			domainerror.ErrTrackerEmojiEmpty,
		)
	}
	if len(schedule.Normalized()) == 0 {
		return valueobject.Color{}, domainerror.NewTrackerError(
			domainerror.ErrCodeTrackerScheduleEmpty,
			"tracker schedule must contain at least one weekday",
			domainerror.ErrTrackerScheduleEmpty,
		)
	}

	color, err := valueobject.ColorFromHex(colorHex)
	if err != nil {
		return valueobject.Color{}, domainerror.NewTrackerError(
			domainerror.ErrCodeTrackerColorInvalid,
			"tracker color must be a valid hex format (#RRGGBB)",
			domainerror.ErrTrackerColorInvalid,
		)
	}

	return color, nil
}
