// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/integration/persistence/model"
)

// trackerOrder keeps a category's trackers in creation order, which is
// the "ordered set" order the UI renders.
const trackerOrder = "created_at ASC, id ASC"

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	db        *gorm.DB
	publisher adapter.ChangePublisher
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB, publisher adapter.ChangePublisher) adapter.CategoryRepository {
	return &categoryRepository{
		db:        db,
		publisher: publisher,
	}
}

// Upsert returns the category with the given title, creating it when absent.
func (r *categoryRepository) Upsert(ctx context.Context, title string) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := r.db.WithContext(ctx).
		Preload("Trackers", func(db *gorm.DB) *gorm.DB { return db.Order(trackerOrder) }).
		Where("title = ?", title).
		First(&categoryModel)
	if result.Error == nil {
		return categoryModel.ToEntity(), nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, domainerror.NewStorageError("category upsert", result.Error)
	}

	categoryModel = model.CategoryModel{Title: title}
	if err := r.db.WithContext(ctx).Create(&categoryModel).Error; err != nil {
		return nil, domainerror.NewStorageError("category upsert", err)
	}

	r.publisher.Publish(adapter.ChangeKindCategory)
	return entity.NewCategory(title), nil
}

// Create creates a new empty category, rejecting title collisions.
func (r *categoryRepository) Create(ctx context.Context, title string) (*entity.Category, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("title = ?", title).
		Count(&count).Error; err != nil {
		return nil, domainerror.NewStorageError("category create", err)
	}
	if count > 0 {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryTitleExists,
			"a category with this title already exists",
			domainerror.ErrCategoryTitleExists,
		)
	}

	categoryModel := model.CategoryModel{Title: title}
	if err := r.db.WithContext(ctx).Create(&categoryModel).Error; err != nil {
		return nil, domainerror.NewStorageError("category create", err)
	}

	r.publisher.Publish(adapter.ChangeKindCategory)
	return entity.NewCategory(title), nil
}

// FindByTitle retrieves a category with its trackers, or (nil, nil).
func (r *categoryRepository) FindByTitle(ctx context.Context, title string) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := r.db.WithContext(ctx).
		Preload("Trackers", func(db *gorm.DB) *gorm.DB { return db.Order(trackerOrder) }).
		Where("title = ?", title).
		First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, domainerror.NewStorageError("category lookup", result.Error)
	}
	return categoryModel.ToEntity(), nil
}

// FindAll retrieves every category ordered by title, trackers materialized.
func (r *categoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []model.CategoryModel
	result := r.db.WithContext(ctx).
		Preload("Trackers", func(db *gorm.DB) *gorm.DB { return db.Order(trackerOrder) }).
		Order("title ASC").
		Find(&categoryModels)
	if result.Error != nil {
		return nil, domainerror.NewStorageError("category list", result.Error)
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i, cm := range categoryModels {
		categories[i] = cm.ToEntity()
	}
	return categories, nil
}
