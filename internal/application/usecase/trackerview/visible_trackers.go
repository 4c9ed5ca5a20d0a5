// Package trackerview derives what the tracker list should display for
// a given date, search text, and completion filter.
package trackerview

import (
	"context"
	"strings"
	"time"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
)

// Filter narrows the visible list by completion state.
type Filter string

const (
	FilterAll         Filter = "all"
	FilterToday       Filter = "today"
	FilterCompleted   Filter = "completed"
	FilterUncompleted Filter = "uncompleted"
)

// IsValid reports whether the filter is one of the four known values.
func (f Filter) IsValid() bool {
	switch f {
	case FilterAll, FilterToday, FilterCompleted, FilterUncompleted:
		return true
	}
	return false
}

// PlaceholderState tells the UI which empty visual to show, when any.
type PlaceholderState string

const (
	// PlaceholderNoTrackersScheduled means no tracker at all is due on
	// the target date's weekday, before search or filters apply.
	PlaceholderNoTrackersScheduled PlaceholderState = "no_trackers_scheduled"
	// PlaceholderFilteredToEmpty means trackers are due that day, but
	// search or the completion filter removed them all.
	PlaceholderFilteredToEmpty PlaceholderState = "filtered_to_empty"
	// PlaceholderHasResults means the visible list is non-empty.
	PlaceholderHasResults PlaceholderState = "has_results"
)

// TrackerView is a tracker plus the per-tracker display data the list
// cell needs.
type TrackerView struct {
	Tracker *entity.Tracker

	// IsCompletedToday reports completion on the target date.
	IsCompletedToday bool

	// CompletedDays is the tracker's lifetime completion total.
	CompletedDays int
}

// Section is one category heading with its surviving trackers.
type Section struct {
	CategoryTitle string
	Trackers      []TrackerView
}

// VisibleTrackersInput represents the projection input.
type VisibleTrackersInput struct {
	Date   time.Time
	Search string
	Filter Filter
}

// VisibleTrackersOutput represents the projection result.
type VisibleTrackersOutput struct {
	Sections    []Section
	Placeholder PlaceholderState
}

// VisibleTrackersUseCase computes the visible tracker list. It is a
// pure read: running it twice with the same input and store state
// yields the same output.
type VisibleTrackersUseCase struct {
	categoryRepo adapter.CategoryRepository
	recordRepo   adapter.RecordRepository
}

// NewVisibleTrackersUseCase creates a new VisibleTrackersUseCase instance.
func NewVisibleTrackersUseCase(
	categoryRepo adapter.CategoryRepository,
	recordRepo adapter.RecordRepository,
) *VisibleTrackersUseCase {
	return &VisibleTrackersUseCase{
		categoryRepo: categoryRepo,
		recordRepo:   recordRepo,
	}
}

// Execute performs the projection. The "today" filter does not narrow
// anything by itself; resetting the date to the current day when the
// user picks it is the caller's concern.
func (uc *VisibleTrackersUseCase) Execute(ctx context.Context, input VisibleTrackersInput) (*VisibleTrackersOutput, error) {
	categories, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	targetDay := entity.WeekDayFromTime(input.Date)
	search := strings.ToLower(strings.TrimSpace(input.Search))

	sections := make([]Section, 0, len(categories))
	scheduledCount := 0

	for _, cat := range categories {
		views := make([]TrackerView, 0, len(cat.Trackers))

		for _, t := range cat.Trackers {
			if !t.Schedule.Contains(targetDay) {
				continue
			}
			scheduledCount++

			if search != "" && !strings.Contains(strings.ToLower(t.Title), search) {
				continue
			}

			completed, err := uc.recordRepo.IsCompleted(ctx, t.ID, entity.DayOf(input.Date))
			if err != nil {
				return nil, err
			}
			if input.Filter == FilterCompleted && !completed {
				continue
			}
			if input.Filter == FilterUncompleted && completed {
				continue
			}

			total, err := uc.recordRepo.CountByTracker(ctx, t.ID)
			if err != nil {
				return nil, err
			}

			views = append(views, TrackerView{
				Tracker:          t,
				IsCompletedToday: completed,
				CompletedDays:    total,
			})
		}

		// A category with no surviving trackers is dropped entirely,
		// never emitted as an empty section.
		if len(views) > 0 {
			sections = append(sections, Section{
				CategoryTitle: cat.Title,
				Trackers:      views,
			})
		}
	}

	return &VisibleTrackersOutput{
		Sections:    sections,
		Placeholder: placeholderFor(scheduledCount, sections),
	}, nil
}

func placeholderFor(scheduledCount int, sections []Section) PlaceholderState {
	switch {
	case len(sections) > 0:
		return PlaceholderHasResults
	case scheduledCount == 0:
		return PlaceholderNoTrackersScheduled
	default:
		return PlaceholderFilteredToEmpty
	}
}
