package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// TrackerRepository defines the interface for tracker persistence operations.
type TrackerRepository interface {
	// Create inserts the tracker under the category with the given
	// title, creating the category when needed. Tracker and membership
	// edge commit together; a tracker never exists without an owning
	// category. An existing tracker id yields
	// domainerror.ErrTrackerAlreadyExists.
	Create(ctx context.Context, tracker *entity.Tracker, categoryTitle string) error

	// Update rewrites the tracker's mutable fields and, when
	// categoryTitle differs from the current owner, moves the tracker
	// atomically so it is visible under exactly one category at every
	// observable point. A missing tracker yields
	// domainerror.ErrTrackerNotFound.
	Update(ctx context.Context, tracker *entity.Tracker, categoryTitle string) error

	// Delete removes the tracker and cascades to its completion
	// records. Deleting an absent tracker is a no-op.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID retrieves a tracker and its owning category title.
	// A missing tracker yields domainerror.ErrTrackerNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tracker, string, error)
}
