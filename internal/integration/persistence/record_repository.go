package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/integration/persistence/model"
)

// recordRepository implements the adapter.RecordRepository interface.
type recordRepository struct {
	db        *gorm.DB
	publisher adapter.ChangePublisher
}

// NewRecordRepository creates a new completion record repository instance.
func NewRecordRepository(db *gorm.DB, publisher adapter.ChangePublisher) adapter.RecordRepository {
	return &recordRepository{
		db:        db,
		publisher: publisher,
	}
}

// Create inserts a completion record, rejecting same-day duplicates.
func (r *recordRepository) Create(ctx context.Context, record *entity.CompletionRecord) error {
	recordModel := model.RecordFromEntity(record)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.TrackerRecordModel{}).
			Where("tracker_id = ? AND date = ?", recordModel.TrackerID, recordModel.Date).
			Count(&count).Error; err != nil {
			return domainerror.NewStorageError("record create", err)
		}
		if count > 0 {
			return domainerror.NewRecordError(
				domainerror.ErrCodeRecordAlreadyExists,
				"this day is already marked complete",
				domainerror.ErrRecordAlreadyExists,
			)
		}

		if err := tx.Create(recordModel).Error; err != nil {
			return domainerror.NewStorageError("record create", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.publisher.Publish(adapter.ChangeKindRecord)
	return nil
}

// DeleteForDay removes every record for the (tracker, day) pair.
func (r *recordRepository) DeleteForDay(ctx context.Context, trackerID uuid.UUID, day time.Time) error {
	result := r.db.WithContext(ctx).
		Delete(&model.TrackerRecordModel{}, "tracker_id = ? AND date = ?", trackerID, entity.DayOf(day))
	if result.Error != nil {
		return domainerror.NewStorageError("record delete", result.Error)
	}

	if result.RowsAffected > 0 {
		r.publisher.Publish(adapter.ChangeKindRecord)
	}
	return nil
}

// DeleteAllForTracker removes every record of the tracker.
func (r *recordRepository) DeleteAllForTracker(ctx context.Context, trackerID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&model.TrackerRecordModel{}, "tracker_id = ?", trackerID)
	if result.Error != nil {
		return domainerror.NewStorageError("record cascade delete", result.Error)
	}

	if result.RowsAffected > 0 {
		r.publisher.Publish(adapter.ChangeKindRecord)
	}
	return nil
}

// IsCompleted checks record existence for the (tracker, day) pair.
func (r *recordRepository) IsCompleted(ctx context.Context, trackerID uuid.UUID, day time.Time) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.TrackerRecordModel{}).
		Where("tracker_id = ? AND date = ?", trackerID, entity.DayOf(day)).
		Count(&count)
	if result.Error != nil {
		return false, domainerror.NewStorageError("record lookup", result.Error)
	}
	return count > 0, nil
}

// CountByTracker returns the tracker's lifetime completion total.
func (r *recordRepository) CountByTracker(ctx context.Context, trackerID uuid.UUID) (int, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.TrackerRecordModel{}).
		Where("tracker_id = ?", trackerID).
		Count(&count)
	if result.Error != nil {
		return 0, domainerror.NewStorageError("record count", result.Error)
	}
	return int(count), nil
}

// CountAll returns the store-wide record total.
func (r *recordRepository) CountAll(ctx context.Context) (int, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.TrackerRecordModel{}).
		Count(&count)
	if result.Error != nil {
		return 0, domainerror.NewStorageError("record count", result.Error)
	}
	return int(count), nil
}

// FindAll retrieves every completion record.
func (r *recordRepository) FindAll(ctx context.Context) ([]*entity.CompletionRecord, error) {
	var recordModels []model.TrackerRecordModel
	result := r.db.WithContext(ctx).
		Order("date ASC, tracker_id ASC").
		Find(&recordModels)
	if result.Error != nil {
		return nil, domainerror.NewStorageError("record list", result.Error)
	}

	records := make([]*entity.CompletionRecord, len(recordModels))
	for i, rm := range recordModels {
		records[i] = rm.ToEntity()
	}
	return records, nil
}
