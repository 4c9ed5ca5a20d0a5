package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/usecase/tracker"
	"github.com/habit-tracker/backend/internal/application/usecase/trackerview"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/dto"
)

// dateLayout is the calendar-day format used in request parameters.
const dateLayout = "2006-01-02"

// TrackerController handles tracker endpoints.
type TrackerController struct {
	createUseCase  *tracker.CreateTrackerUseCase
	updateUseCase  *tracker.UpdateTrackerUseCase
	deleteUseCase  *tracker.DeleteTrackerUseCase
	visibleUseCase *trackerview.VisibleTrackersUseCase
}

// NewTrackerController creates a new tracker controller instance.
func NewTrackerController(
	createUseCase *tracker.CreateTrackerUseCase,
	updateUseCase *tracker.UpdateTrackerUseCase,
	deleteUseCase *tracker.DeleteTrackerUseCase,
	visibleUseCase *trackerview.VisibleTrackersUseCase,
) *TrackerController {
	return &TrackerController{
		createUseCase:  createUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		visibleUseCase: visibleUseCase,
	}
}

// Create handles POST /trackers requests.
func (c *TrackerController) Create(ctx *gin.Context) {
	var req dto.TrackerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), tracker.CreateTrackerInput{
		Title:         req.Title,
		Emoji:         req.Emoji,
		Color:         req.Color,
		Schedule:      req.ScheduleToEntity(),
		CategoryTitle: req.CategoryTitle,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.TrackerCreatedResponse{
		Tracker:       dto.ToTrackerResponse(output.Tracker),
		CategoryTitle: output.CategoryTitle,
	})
}

// Update handles PUT /trackers/:id requests.
func (c *TrackerController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid tracker id"})
		return
	}

	var req dto.TrackerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), tracker.UpdateTrackerInput{
		ID:            id,
		Title:         req.Title,
		Emoji:         req.Emoji,
		Color:         req.Color,
		Schedule:      req.ScheduleToEntity(),
		CategoryTitle: req.CategoryTitle,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TrackerCreatedResponse{
		Tracker:       dto.ToTrackerResponse(output.Tracker),
		CategoryTitle: output.CategoryTitle,
	})
}

// Delete handles DELETE /trackers/:id requests. Deleting an absent
// tracker still returns 204; the end state is the same.
func (c *TrackerController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid tracker id"})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), tracker.DeleteTrackerInput{ID: id}); err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Visible handles GET /trackers/visible requests. Query parameters:
// date (2006-01-02, default today), search, filter
// (all|today|completed|uncompleted). Picking the "today" filter resets
// the date to the current day, matching the UI convention.
func (c *TrackerController) Visible(ctx *gin.Context) {
	date := time.Now()
	if dateStr := ctx.Query("date"); dateStr != "" {
		parsed, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid date, expected YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	filter := trackerview.FilterAll
	if filterStr := ctx.Query("filter"); filterStr != "" {
		filter = trackerview.Filter(filterStr)
		if !filter.IsValid() {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid filter, expected all|today|completed|uncompleted"})
			return
		}
	}
	if filter == trackerview.FilterToday {
		date = time.Now()
	}

	output, err := c.visibleUseCase.Execute(ctx.Request.Context(), trackerview.VisibleTrackersInput{
		Date:   date,
		Search: ctx.Query("search"),
		Filter: filter,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToVisibleTrackersResponse(output))
}
