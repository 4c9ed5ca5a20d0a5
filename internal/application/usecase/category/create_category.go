package category

import (
	"context"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
)

// CreateCategoryInput represents the input for strict category creation.
type CreateCategoryInput struct {
	Title string
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles the explicit "add category" action.
// Unlike upsert, a title collision is an error the caller must handle.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	if err := validateTitle(input.Title); err != nil {
		return nil, err
	}

	cat, err := uc.categoryRepo.Create(ctx, input.Title)
	if err != nil {
		return nil, err
	}

	return &CreateCategoryOutput{Category: cat}, nil
}
