package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habit-tracker/backend/internal/application/usecase/record"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/dto"
)

// StatisticsController handles the statistics endpoint.
type StatisticsController struct {
	getStatisticsUseCase *record.GetStatisticsUseCase
}

// NewStatisticsController creates a new statistics controller instance.
func NewStatisticsController(getStatisticsUseCase *record.GetStatisticsUseCase) *StatisticsController {
	return &StatisticsController{
		getStatisticsUseCase: getStatisticsUseCase,
	}
}

// Get handles GET /statistics requests.
func (c *StatisticsController) Get(ctx *gin.Context) {
	output, err := c.getStatisticsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StatisticsResponse{
		CompletedTrackers: output.CompletedTrackers,
	})
}
