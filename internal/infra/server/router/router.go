// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/habit-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine               *gin.Engine
	healthController     *controller.HealthController
	categoryController   *controller.CategoryController
	trackerController    *controller.TrackerController
	recordController     *controller.RecordController
	statisticsController *controller.StatisticsController
	cacheMiddleware      gin.HandlerFunc
}

// NewRouter creates a new router instance with all dependencies.
// cacheMiddleware may be nil when the response cache is disabled.
func NewRouter(
	healthController *controller.HealthController,
	categoryController *controller.CategoryController,
	trackerController *controller.TrackerController,
	recordController *controller.RecordController,
	statisticsController *controller.StatisticsController,
	cacheMiddleware gin.HandlerFunc,
) *Router {
	return &Router{
		healthController:     healthController,
		categoryController:   categoryController,
		trackerController:    trackerController,
		recordController:     recordController,
		statisticsController: statisticsController,
		cacheMiddleware:      cacheMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.New()
	r.engine.Use(gin.Recovery(), middleware.RequestLogger())

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	if r.cacheMiddleware != nil {
		v1.Use(r.cacheMiddleware)
	}

	categories := v1.Group("/categories")
	{
		categories.GET("", r.categoryController.List)
		categories.POST("", r.categoryController.Create)
		categories.PUT("", r.categoryController.Upsert)
	}

	trackers := v1.Group("/trackers")
	{
		trackers.GET("/visible", r.trackerController.Visible)
		trackers.POST("", r.trackerController.Create)
		trackers.PUT("/:id", r.trackerController.Update)
		trackers.DELETE("/:id", r.trackerController.Delete)

		trackers.POST("/:id/records", r.recordController.Complete)
		trackers.DELETE("/:id/records", r.recordController.Uncomplete)
	}

	v1.GET("/statistics", r.statisticsController.Get)
}
