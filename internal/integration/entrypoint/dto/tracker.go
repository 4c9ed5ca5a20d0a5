package dto

import (
	"time"

	"github.com/habit-tracker/backend/internal/application/usecase/trackerview"
	"github.com/habit-tracker/backend/internal/domain/entity"
)

// TrackerRequest represents the request body for tracker creation and
// editing. Schedule holds weekday numbers in enum order: 1=Monday ...
// 7=Sunday.
type TrackerRequest struct {
	Title         string `json:"title" binding:"required,max=38"`
	Emoji         string `json:"emoji" binding:"required"`
	Color         string `json:"color" binding:"required"`
	Schedule      []int  `json:"schedule" binding:"required,min=1,dive,min=1,max=7"`
	CategoryTitle string `json:"category_title" binding:"required,min=1,max=100"`
}

// ScheduleToEntity converts the weekday numbers to a domain schedule.
func (r *TrackerRequest) ScheduleToEntity() entity.Schedule {
	schedule := make(entity.Schedule, 0, len(r.Schedule))
	for _, n := range r.Schedule {
		schedule = append(schedule, entity.WeekDay(n))
	}
	return schedule.Normalized()
}

// TrackerResponse represents a single tracker in API responses.
type TrackerResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Emoji     string    `json:"emoji"`
	Color     string    `json:"color"`
	Schedule  []int     `json:"schedule"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToTrackerResponse converts a domain Tracker entity to a TrackerResponse DTO.
func ToTrackerResponse(t *entity.Tracker) TrackerResponse {
	schedule := make([]int, len(t.Schedule))
	for i, d := range t.Schedule {
		schedule[i] = int(d)
	}
	return TrackerResponse{
		ID:        t.ID.String(),
		Title:     t.Title,
		Emoji:     t.Emoji,
		Color:     t.Color.Hex(),
		Schedule:  schedule,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// TrackerCreatedResponse represents the response after creating or
// editing a tracker.
type TrackerCreatedResponse struct {
	Tracker       TrackerResponse `json:"tracker"`
	CategoryTitle string          `json:"category_title"`
}

// VisibleTrackerResponse is a tracker plus its per-date display data.
type VisibleTrackerResponse struct {
	TrackerResponse
	IsCompletedToday bool `json:"is_completed_today"`
	CompletedDays    int  `json:"completed_days"`
}

// VisibleSectionResponse is one category section of the visible list.
type VisibleSectionResponse struct {
	CategoryTitle string                   `json:"category_title"`
	Trackers      []VisibleTrackerResponse `json:"trackers"`
}

// VisibleTrackersResponse represents the visible-list projection.
type VisibleTrackersResponse struct {
	Sections    []VisibleSectionResponse `json:"sections"`
	Placeholder string                   `json:"placeholder"`
}

// ToVisibleTrackersResponse converts the projection output to its DTO.
func ToVisibleTrackersResponse(output *trackerview.VisibleTrackersOutput) VisibleTrackersResponse {
	sections := make([]VisibleSectionResponse, len(output.Sections))
	for i, section := range output.Sections {
		trackers := make([]VisibleTrackerResponse, len(section.Trackers))
		for j, view := range section.Trackers {
			trackers[j] = VisibleTrackerResponse{
				TrackerResponse:  ToTrackerResponse(view.Tracker),
				IsCompletedToday: view.IsCompletedToday,
				CompletedDays:    view.CompletedDays,
			}
		}
		sections[i] = VisibleSectionResponse{
			CategoryTitle: section.CategoryTitle,
			Trackers:      trackers,
		}
	}
	return VisibleTrackersResponse{
		Sections:    sections,
		Placeholder: string(output.Placeholder),
	}
}
