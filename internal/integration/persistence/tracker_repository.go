package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/integration/persistence/model"
)

// trackerRepository implements the adapter.TrackerRepository interface.
type trackerRepository struct {
	db        *gorm.DB
	publisher adapter.ChangePublisher
}

// NewTrackerRepository creates a new tracker repository instance.
func NewTrackerRepository(db *gorm.DB, publisher adapter.ChangePublisher) adapter.TrackerRepository {
	return &trackerRepository{
		db:        db,
		publisher: publisher,
	}
}

// Create inserts the tracker and its membership edge in one transaction.
func (r *trackerRepository) Create(ctx context.Context, tracker *entity.Tracker, categoryTitle string) error {
	categoryCreated := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.TrackerModel{}).
			Where("id = ?", tracker.ID).
			Count(&count).Error; err != nil {
			return domainerror.NewStorageError("tracker create", err)
		}
		if count > 0 {
			return domainerror.NewTrackerError(
				domainerror.ErrCodeTrackerAlreadyExists,
				"a tracker with this id already exists",
				domainerror.ErrTrackerAlreadyExists,
			)
		}

		created, err := upsertCategoryTx(tx, categoryTitle)
		if err != nil {
			return err
		}
		categoryCreated = created

		trackerModel := model.TrackerFromEntity(tracker, categoryTitle)
		if err := tx.Create(trackerModel).Error; err != nil {
			return domainerror.NewStorageError("tracker create", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if categoryCreated {
		r.publisher.Publish(adapter.ChangeKindCategory)
	}
	r.publisher.Publish(adapter.ChangeKindTracker)
	return nil
}

// Update rewrites mutable fields and moves the tracker between
// categories when the owning title changed. Both sides of the move
// commit together: the tracker is never visible under two categories,
// or under none.
func (r *trackerRepository) Update(ctx context.Context, tracker *entity.Tracker, categoryTitle string) error {
	categoryCreated := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.TrackerModel
		if err := tx.Where("id = ?", tracker.ID).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerror.NewTrackerError(
					domainerror.ErrCodeTrackerNotFound,
					"tracker does not exist",
					domainerror.ErrTrackerNotFound,
				)
			}
			return domainerror.NewStorageError("tracker update", err)
		}

		if existing.CategoryTitle != categoryTitle {
			created, err := upsertCategoryTx(tx, categoryTitle)
			if err != nil {
				return err
			}
			categoryCreated = created
		}

		updates := map[string]interface{}{
			"title":          tracker.Title,
			"emoji":          tracker.Emoji,
			"color":          tracker.Color.Hex(),
			"schedule":       model.ScheduleToColumn(tracker.Schedule),
			"category_title": categoryTitle,
			"updated_at":     tracker.UpdatedAt,
		}
		if err := tx.Model(&model.TrackerModel{}).
			Where("id = ?", tracker.ID).
			Updates(updates).Error; err != nil {
			return domainerror.NewStorageError("tracker update", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if categoryCreated {
		r.publisher.Publish(adapter.ChangeKindCategory)
	}
	r.publisher.Publish(adapter.ChangeKindTracker)
	return nil
}

// Delete removes the tracker and cascades to its completion records.
// Deleting an absent tracker is a no-op and publishes nothing.
func (r *trackerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	deleted := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.TrackerModel{}, "id = ?", id)
		if result.Error != nil {
			return domainerror.NewStorageError("tracker delete", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil
		}
		deleted = true

		if err := tx.Delete(&model.TrackerRecordModel{}, "tracker_id = ?", id).Error; err != nil {
			return domainerror.NewStorageError("tracker delete", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if deleted {
		r.publisher.Publish(adapter.ChangeKindTracker)
		r.publisher.Publish(adapter.ChangeKindRecord)
	}
	return nil
}

// FindByID retrieves a tracker and its owning category title.
func (r *trackerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tracker, string, error) {
	var trackerModel model.TrackerModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&trackerModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, "", domainerror.NewTrackerError(
				domainerror.ErrCodeTrackerNotFound,
				"tracker does not exist",
				domainerror.ErrTrackerNotFound,
			)
		}
		return nil, "", domainerror.NewStorageError("tracker lookup", result.Error)
	}
	return trackerModel.ToEntity(), trackerModel.CategoryTitle, nil
}

// upsertCategoryTx resolves the category row inside an open
// transaction and reports whether it had to create one.
func upsertCategoryTx(tx *gorm.DB, title string) (bool, error) {
	var count int64
	if err := tx.Model(&model.CategoryModel{}).
		Where("title = ?", title).
		Count(&count).Error; err != nil {
		return false, domainerror.NewStorageError("category upsert", err)
	}
	if count > 0 {
		return false, nil
	}

	if err := tx.Create(&model.CategoryModel{Title: title}).Error; err != nil {
		return false, domainerror.NewStorageError("category upsert", err)
	}
	return true, nil
}
