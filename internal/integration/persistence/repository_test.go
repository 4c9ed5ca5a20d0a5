package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/domain/valueobject"
	"github.com/habit-tracker/backend/internal/integration/persistence/model"
)

// capturingPublisher records published change kinds in order.
type capturingPublisher struct {
	events []adapter.ChangeKind
}

func (p *capturingPublisher) Publish(kind adapter.ChangeKind) {
	p.events = append(p.events, kind)
}

func (p *capturingPublisher) reset() {
	p.events = nil
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.CategoryModel{},
		&model.TrackerModel{},
		&model.TrackerRecordModel{},
	))
	return db
}

func newTracker(t *testing.T, title string, schedule entity.Schedule) *entity.Tracker {
	t.Helper()
	color, err := valueobject.ColorFromHex("#FD4C49")
	require.NoError(t, err)
	return entity.NewTracker(title, "🙂", color, schedule)
}

func TestCategoryRepositoryUpsert(t *testing.T) {
	db := setupTestDB(t)
	publisher := &capturingPublisher{}
	repo := NewCategoryRepository(db, publisher)
	ctx := context.Background()

	first, err := repo.Upsert(ctx, "Health")
	require.NoError(t, err)
	assert.Equal(t, "Health", first.Title)
	assert.Equal(t, []adapter.ChangeKind{adapter.ChangeKindCategory}, publisher.events)

	// The second upsert reuses the row and publishes nothing.
	publisher.reset()
	second, err := repo.Upsert(ctx, "Health")
	require.NoError(t, err)
	assert.Equal(t, "Health", second.Title)
	assert.Empty(t, publisher.events)

	var count int64
	require.NoError(t, db.Model(&model.CategoryModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCategoryRepositoryCreateStrict(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db, &capturingPublisher{})
	ctx := context.Background()

	_, err := repo.Create(ctx, "Health")
	require.NoError(t, err)

	_, err = repo.Create(ctx, "Health")
	assert.ErrorIs(t, err, domainerror.ErrCategoryTitleExists)
}

func TestCategoryRepositoryFindByTitle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db, &capturingPublisher{})
	ctx := context.Background()

	found, err := repo.FindByTitle(ctx, "Nowhere")
	require.NoError(t, err)
	assert.Nil(t, found)

	_, err = repo.Upsert(ctx, "Health")
	require.NoError(t, err)

	found, err = repo.FindByTitle(ctx, "Health")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Health", found.Title)
	assert.Empty(t, found.Trackers)
}

func TestCategoryRepositoryFindAllOrdering(t *testing.T) {
	db := setupTestDB(t)
	publisher := &capturingPublisher{}
	categoryRepo := NewCategoryRepository(db, publisher)
	trackerRepo := NewTrackerRepository(db, publisher)
	ctx := context.Background()

	// Insert out of title order; trackers arrive in creation order.
	first := newTracker(t, "Stretch", entity.Schedule{entity.Monday})
	second := newTracker(t, "Morning run", entity.Schedule{entity.Monday})
	require.NoError(t, trackerRepo.Create(ctx, first, "Zen"))
	require.NoError(t, trackerRepo.Create(ctx, second, "Zen"))
	_, err := categoryRepo.Upsert(ctx, "Art")
	require.NoError(t, err)

	categories, err := categoryRepo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Art", categories[0].Title)
	assert.Equal(t, "Zen", categories[1].Title)

	require.Len(t, categories[1].Trackers, 2)
	assert.Equal(t, "Stretch", categories[1].Trackers[0].Title)
	assert.Equal(t, "Morning run", categories[1].Trackers[1].Title)
}

func TestTrackerRepositoryCreate(t *testing.T) {
	db := setupTestDB(t)
	publisher := &capturingPublisher{}
	repo := NewTrackerRepository(db, publisher)
	ctx := context.Background()

	tracker := newTracker(t, "Morning run", entity.Schedule{entity.Monday, entity.Wednesday})
	require.NoError(t, repo.Create(ctx, tracker, "Health"))

	// The category was created implicitly alongside the tracker.
	assert.Equal(t, []adapter.ChangeKind{adapter.ChangeKindCategory, adapter.ChangeKindTracker}, publisher.events)

	found, categoryTitle, err := repo.FindByID(ctx, tracker.ID)
	require.NoError(t, err)
	assert.Equal(t, "Health", categoryTitle)
	assert.Equal(t, tracker.Title, found.Title)
	assert.Equal(t, "#FD4C49", found.Color.Hex())
	assert.Equal(t, entity.Schedule{entity.Monday, entity.Wednesday}, found.Schedule)

	// A second tracker under the same category publishes no category event.
	publisher.reset()
	require.NoError(t, repo.Create(ctx, newTracker(t, "Stretch", entity.Schedule{entity.Friday}), "Health"))
	assert.Equal(t, []adapter.ChangeKind{adapter.ChangeKindTracker}, publisher.events)

	// Reinserting the same id is rejected.
	err = repo.Create(ctx, tracker, "Health")
	assert.ErrorIs(t, err, domainerror.ErrTrackerAlreadyExists)
}

func TestTrackerRepositoryUpdateMovesCategory(t *testing.T) {
	db := setupTestDB(t)
	publisher := &capturingPublisher{}
	trackerRepo := NewTrackerRepository(db, publisher)
	categoryRepo := NewCategoryRepository(db, publisher)
	ctx := context.Background()

	tracker := newTracker(t, "Read a book", entity.Schedule{entity.Tuesday})
	require.NoError(t, trackerRepo.Create(ctx, tracker, "Leisure"))

	tracker.Title = "Read two books"
	require.NoError(t, trackerRepo.Update(ctx, tracker, "Self-improvement"))

	_, categoryTitle, err := trackerRepo.FindByID(ctx, tracker.ID)
	require.NoError(t, err)
	assert.Equal(t, "Self-improvement", categoryTitle)

	// The tracker lives under exactly one category.
	old, err := categoryRepo.FindByTitle(ctx, "Leisure")
	require.NoError(t, err)
	require.NotNil(t, old)
	assert.Empty(t, old.Trackers)

	moved, err := categoryRepo.FindByTitle(ctx, "Self-improvement")
	require.NoError(t, err)
	require.NotNil(t, moved)
	require.Len(t, moved.Trackers, 1)
	assert.Equal(t, "Read two books", moved.Trackers[0].Title)

	// The emptied source category persists.
	categories, err := categoryRepo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 2)
}

func TestTrackerRepositoryUpdateMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTrackerRepository(db, &capturingPublisher{})

	tracker := newTracker(t, "Ghost", entity.Schedule{entity.Monday})
	err := repo.Update(context.Background(), tracker, "Anywhere")
	assert.ErrorIs(t, err, domainerror.ErrTrackerNotFound)
}

func TestTrackerRepositoryDeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	publisher := &capturingPublisher{}
	trackerRepo := NewTrackerRepository(db, publisher)
	recordRepo := NewRecordRepository(db, publisher)
	ctx := context.Background()

	tracker := newTracker(t, "Morning run", entity.Schedule{entity.Monday})
	require.NoError(t, trackerRepo.Create(ctx, tracker, "Health"))

	day := time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC)
	require.NoError(t, recordRepo.Create(ctx, entity.NewCompletionRecord(tracker.ID, day)))
	require.NoError(t, recordRepo.Create(ctx, entity.NewCompletionRecord(tracker.ID, day.AddDate(0, 0, 7))))

	publisher.reset()
	require.NoError(t, trackerRepo.Delete(ctx, tracker.ID))
	assert.Equal(t, []adapter.ChangeKind{adapter.ChangeKindTracker, adapter.ChangeKindRecord}, publisher.events)

	total, err := recordRepo.CountAll(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)

	// Deleting again is a no-op and publishes nothing.
	publisher.reset()
	require.NoError(t, trackerRepo.Delete(ctx, tracker.ID))
	assert.Empty(t, publisher.events)
}

func TestRecordRepositoryCreateRejectsDuplicates(t *testing.T) {
	db := setupTestDB(t)
	publisher := &capturingPublisher{}
	repo := NewRecordRepository(db, publisher)
	ctx := context.Background()

	trackerID := uuid.New()
	day := time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, entity.NewCompletionRecord(trackerID, day)))

	// Any time of day addresses the same calendar day.
	err := repo.Create(ctx, entity.NewCompletionRecord(trackerID, day.Add(15*time.Hour)))
	assert.ErrorIs(t, err, domainerror.ErrRecordAlreadyExists)

	total, err := repo.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestRecordRepositoryLookupsAndCounts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecordRepository(db, &capturingPublisher{})
	ctx := context.Background()

	trackerA := uuid.New()
	trackerB := uuid.New()
	day := time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, entity.NewCompletionRecord(trackerA, day)))
	require.NoError(t, repo.Create(ctx, entity.NewCompletionRecord(trackerA, day.AddDate(0, 0, 1))))
	require.NoError(t, repo.Create(ctx, entity.NewCompletionRecord(trackerB, day)))

	completed, err := repo.IsCompleted(ctx, trackerA, day.Add(10*time.Hour))
	require.NoError(t, err)
	assert.True(t, completed)

	completed, err = repo.IsCompleted(ctx, trackerB, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.False(t, completed)

	countA, err := repo.CountByTracker(ctx, trackerA)
	require.NoError(t, err)
	assert.Equal(t, 2, countA)

	total, err := repo.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, total)

	records, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestRecordRepositoryDeleteForDay(t *testing.T) {
	db := setupTestDB(t)
	publisher := &capturingPublisher{}
	repo := NewRecordRepository(db, publisher)
	ctx := context.Background()

	trackerID := uuid.New()
	day := time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, entity.NewCompletionRecord(trackerID, day)))

	publisher.reset()
	require.NoError(t, repo.DeleteForDay(ctx, trackerID, day.Add(20*time.Hour)))
	assert.Equal(t, []adapter.ChangeKind{adapter.ChangeKindRecord}, publisher.events)

	completed, err := repo.IsCompleted(ctx, trackerID, day)
	require.NoError(t, err)
	assert.False(t, completed)

	// Deleting an absent pair is a no-op and publishes nothing.
	publisher.reset()
	require.NoError(t, repo.DeleteForDay(ctx, trackerID, day))
	assert.Empty(t, publisher.events)
}

func TestTrackerModelColorFallback(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTrackerRepository(db, &capturingPublisher{})
	ctx := context.Background()

	tracker := newTracker(t, "Morning run", entity.Schedule{entity.Monday})
	require.NoError(t, repo.Create(ctx, tracker, "Health"))

	// Corrupt the stored swatch; reads fall back to the default gray.
	require.NoError(t, db.Model(&model.TrackerModel{}).
		Where("id = ?", tracker.ID).
		Update("color", "not-a-color").Error)

	found, _, err := repo.FindByID(ctx, tracker.ID)
	require.NoError(t, err)
	assert.Equal(t, valueobject.DefaultColor(), found.Color)
}
