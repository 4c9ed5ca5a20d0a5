// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// UpsertCategoryInput represents the input for category resolution.
type UpsertCategoryInput struct {
	Title string
}

// UpsertCategoryOutput represents the output of category resolution.
type UpsertCategoryOutput struct {
	Category *entity.Category
}

// UpsertCategoryUseCase resolves a category by title, creating an empty
// one when the title is unseen. Calling it twice with the same title
// never produces two categories.
type UpsertCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewUpsertCategoryUseCase creates a new UpsertCategoryUseCase instance.
func NewUpsertCategoryUseCase(categoryRepo adapter.CategoryRepository) *UpsertCategoryUseCase {
	return &UpsertCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the idempotent get-or-create.
func (uc *UpsertCategoryUseCase) Execute(ctx context.Context, input UpsertCategoryInput) (*UpsertCategoryOutput, error) {
	if err := validateTitle(input.Title); err != nil {
		return nil, err
	}

	cat, err := uc.categoryRepo.Upsert(ctx, input.Title)
	if err != nil {
		return nil, err
	}

	return &UpsertCategoryOutput{Category: cat}, nil
}

// validateTitle rejects empty and oversized category titles before any
// mutation happens.
func validateTitle(title string) error {
	if title == "" {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryTitleEmpty,
			"category title must not be empty",
			domainerror.ErrCategoryTitleEmpty,
		)
	}
	if utf8.RuneCountInString(title) > entity.MaxCategoryTitleLength {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryTitleTooLong,
			fmt.Sprintf("category title must not exceed %d characters", entity.MaxCategoryTitleLength),
			domainerror.ErrCategoryTitleTooLong,
		)
	}
	return nil
}
