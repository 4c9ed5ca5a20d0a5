package record

import (
	"context"

	"github.com/habit-tracker/backend/internal/application/adapter"
)

// GetStatisticsOutput represents the output for the statistics view.
type GetStatisticsOutput struct {
	// CompletedTrackers is the total number of completion records in
	// the store, the single figure the statistics screen shows.
	CompletedTrackers int
}

// GetStatisticsUseCase computes store-wide completion statistics.
type GetStatisticsUseCase struct {
	recordRepo adapter.RecordRepository
}

// NewGetStatisticsUseCase creates a new GetStatisticsUseCase instance.
func NewGetStatisticsUseCase(recordRepo adapter.RecordRepository) *GetStatisticsUseCase {
	return &GetStatisticsUseCase{
		recordRepo: recordRepo,
	}
}

// Execute computes the statistics.
func (uc *GetStatisticsUseCase) Execute(ctx context.Context) (*GetStatisticsOutput, error) {
	total, err := uc.recordRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	return &GetStatisticsOutput{CompletedTrackers: total}, nil
}
