// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Upsert returns the category with the given title, creating an
	// empty one if it does not exist yet. Idempotent.
	Upsert(ctx context.Context, title string) (*entity.Category, error)

	// Create creates a new empty category with strict semantics:
	// a title collision yields domainerror.ErrCategoryTitleExists.
	Create(ctx context.Context, title string) (*entity.Category, error)

	// FindByTitle retrieves a category by its title, trackers included.
	// Returns (nil, nil) when no such category exists.
	FindByTitle(ctx context.Context, title string) (*entity.Category, error)

	// FindAll retrieves every category ordered by title ascending, with
	// each category's trackers fully materialized in creation order.
	FindAll(ctx context.Context) ([]*entity.Category, error)
}
