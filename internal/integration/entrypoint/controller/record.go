package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/usecase/record"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/dto"
)

// RecordController handles completion record endpoints.
type RecordController struct {
	completeUseCase   *record.CompleteTrackerUseCase
	uncompleteUseCase *record.UncompleteTrackerUseCase
}

// NewRecordController creates a new record controller instance.
func NewRecordController(
	completeUseCase *record.CompleteTrackerUseCase,
	uncompleteUseCase *record.UncompleteTrackerUseCase,
) *RecordController {
	return &RecordController{
		completeUseCase:   completeUseCase,
		uncompleteUseCase: uncompleteUseCase,
	}
}

// Complete handles POST /trackers/:id/records requests.
func (c *RecordController) Complete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid tracker id"})
		return
	}

	var req dto.CompleteTrackerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid date, expected YYYY-MM-DD"})
		return
	}

	if _, err := c.completeUseCase.Execute(ctx.Request.Context(), record.CompleteTrackerInput{
		TrackerID: id,
		Date:      date,
	}); err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.Status(http.StatusCreated)
}

// Uncomplete handles DELETE /trackers/:id/records requests with a
// required date query parameter.
func (c *RecordController) Uncomplete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid tracker id"})
		return
	}

	dateStr := ctx.Query("date")
	if dateStr == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Missing date query parameter"})
		return
	}
	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid date, expected YYYY-MM-DD"})
		return
	}

	if err := c.uncompleteUseCase.Execute(ctx.Request.Context(), record.UncompleteTrackerInput{
		TrackerID: id,
		Date:      date,
	}); err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
