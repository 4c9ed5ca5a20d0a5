// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/habit-tracker/backend/config"
	"github.com/habit-tracker/backend/internal/application/usecase/category"
	"github.com/habit-tracker/backend/internal/application/usecase/record"
	"github.com/habit-tracker/backend/internal/application/usecase/tracker"
	"github.com/habit-tracker/backend/internal/application/usecase/trackerview"
	"github.com/habit-tracker/backend/internal/infra/server/router"
	"github.com/habit-tracker/backend/internal/integration/cache"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/habit-tracker/backend/internal/integration/events"
	"github.com/habit-tracker/backend/internal/integration/persistence"
)

// Injector holds all application dependencies. The change bus and the
// store handle are created once here and passed by reference; nothing
// reaches them through package-level state.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Bus    *events.Bus
	Router *router.Router

	responseCache  *cache.ResponseCache
	stopInvalidate func()
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, healthChecker func() bool) *Injector {
	// Change-notification bus; repositories publish into it after commits.
	bus := events.NewBus()

	// Create repositories
	categoryRepo := persistence.NewCategoryRepository(db, bus)
	trackerRepo := persistence.NewTrackerRepository(db, bus)
	recordRepo := persistence.NewRecordRepository(db, bus)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	upsertCategoryUseCase := category.NewUpsertCategoryUseCase(categoryRepo)

	// Create tracker use cases
	createTrackerUseCase := tracker.NewCreateTrackerUseCase(trackerRepo)
	updateTrackerUseCase := tracker.NewUpdateTrackerUseCase(trackerRepo)
	deleteTrackerUseCase := tracker.NewDeleteTrackerUseCase(trackerRepo)

	// Create record use cases
	completeUseCase := record.NewCompleteTrackerUseCase(recordRepo)
	uncompleteUseCase := record.NewUncompleteTrackerUseCase(recordRepo)
	statisticsUseCase := record.NewGetStatisticsUseCase(recordRepo)

	// Create projection use case
	visibleUseCase := trackerview.NewVisibleTrackersUseCase(categoryRepo, recordRepo)

	// Create controllers
	healthController := controller.NewHealthController(healthChecker)
	categoryController := controller.NewCategoryController(listCategoriesUseCase, createCategoryUseCase, upsertCategoryUseCase)
	trackerController := controller.NewTrackerController(
		createTrackerUseCase,
		updateTrackerUseCase,
		deleteTrackerUseCase,
		visibleUseCase,
	)
	recordController := controller.NewRecordController(completeUseCase, uncompleteUseCase)
	statisticsController := controller.NewStatisticsController(statisticsUseCase)

	injector := &Injector{
		Config: cfg,
		DB:     db,
		Bus:    bus,
	}

	// Optional Redis response cache
	var cacheMiddleware gin.HandlerFunc
	if cfg.Redis.Enabled() {
		responseCache, err := cache.NewResponseCache(&cfg.Redis)
		if err != nil {
			slog.Warn("Response cache disabled, Redis unavailable", "addr", cfg.Redis.Addr, "error", err)
		} else {
			cacheMiddleware = middleware.ResponseCache(responseCache)
			injector.responseCache = responseCache
			injector.stopInvalidate = responseCache.StartInvalidator(bus)
			slog.Info("Response cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.TTLOrDefault())
		}
	}

	injector.Router = router.NewRouter(
		healthController,
		categoryController,
		trackerController,
		recordController,
		statisticsController,
		cacheMiddleware,
	)

	return injector
}

// Shutdown releases the bus and cache resources.
func (i *Injector) Shutdown() {
	if i.stopInvalidate != nil {
		i.stopInvalidate()
	}
	if i.responseCache != nil {
		if err := i.responseCache.Close(); err != nil {
			slog.Error("Failed to close response cache", "error", err)
		}
	}
	i.Bus.Close()
}
