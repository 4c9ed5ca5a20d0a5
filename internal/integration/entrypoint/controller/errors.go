// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/dto"
)

// respondDomainError translates a domain error into an HTTP response.
// Validation failures are 400, unknown ids 404, collisions 409, future
// completions 422, and storage failures 500.
func respondDomainError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, domainerror.ErrTrackerTitleEmpty),
		errors.Is(err, domainerror.ErrTrackerTitleTooLong),
		errors.Is(err, domainerror.ErrTrackerEmojiEmpty),
		errors.Is(err, domainerror.ErrTrackerScheduleEmpty),
		errors.Is(err, domainerror.ErrTrackerColorInvalid),
		errors.Is(err, domainerror.ErrCategoryTitleEmpty),
		errors.Is(err, domainerror.ErrCategoryTitleTooLong):
		status = http.StatusBadRequest
	case errors.Is(err, domainerror.ErrTrackerNotFound),
		errors.Is(err, domainerror.ErrCategoryNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domainerror.ErrTrackerAlreadyExists),
		errors.Is(err, domainerror.ErrCategoryTitleExists),
		errors.Is(err, domainerror.ErrRecordAlreadyExists):
		status = http.StatusConflict
	case errors.Is(err, domainerror.ErrFutureDate):
		status = http.StatusUnprocessableEntity
	}

	ctx.JSON(status, dto.ErrorResponse{
		Error: err.Error(),
		Code:  errorCode(err),
	})
}

// errorCode extracts the domain error code, when one is attached.
func errorCode(err error) string {
	var catErr *domainerror.CategoryError
	if errors.As(err, &catErr) {
		return string(catErr.Code)
	}
	var trkErr *domainerror.TrackerError
	if errors.As(err, &trkErr) {
		return string(trkErr.Code)
	}
	var recErr *domainerror.RecordError
	if errors.As(err, &recErr) {
		return string(recErr.Code)
	}
	return ""
}
