// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/habit-tracker/backend/internal/application/usecase/category"
	"github.com/habit-tracker/backend/internal/application/usecase/record"
	"github.com/habit-tracker/backend/internal/application/usecase/tracker"
	"github.com/habit-tracker/backend/internal/application/usecase/trackerview"
	"github.com/habit-tracker/backend/internal/infra/server/router"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/habit-tracker/backend/internal/integration/events"
	"github.com/habit-tracker/backend/internal/integration/persistence"
	"github.com/habit-tracker/backend/test/integration/mock"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	server       *httptest.Server
	engine       *gin.Engine
	response     *http.Response
	responseBody []byte

	db  *mock.Db
	bus *events.Bus

	// trackerIDs maps tracker titles to their generated ids so steps
	// can address trackers by title.
	trackerIDs map[string]string
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc := &TestContext{
			db:         mock.NewDb(),
			trackerIDs: make(map[string]string),
		}
		if err := tc.db.Reset(); err != nil {
			return ctx, fmt.Errorf("failed to reset database: %w", err)
		}

		tc.bus = events.NewBus()

		categoryRepo := persistence.NewCategoryRepository(tc.db.DbConn, tc.bus)
		trackerRepo := persistence.NewTrackerRepository(tc.db.DbConn, tc.bus)
		recordRepo := persistence.NewRecordRepository(tc.db.DbConn, tc.bus)

		healthController := controller.NewHealthController(func() bool { return true })
		categoryController := controller.NewCategoryController(
			category.NewListCategoriesUseCase(categoryRepo),
			category.NewCreateCategoryUseCase(categoryRepo),
			category.NewUpsertCategoryUseCase(categoryRepo),
		)
		trackerController := controller.NewTrackerController(
			tracker.NewCreateTrackerUseCase(trackerRepo),
			tracker.NewUpdateTrackerUseCase(trackerRepo),
			tracker.NewDeleteTrackerUseCase(trackerRepo),
			trackerview.NewVisibleTrackersUseCase(categoryRepo, recordRepo),
		)
		recordController := controller.NewRecordController(
			record.NewCompleteTrackerUseCase(recordRepo),
			record.NewUncompleteTrackerUseCase(recordRepo),
		)
		statisticsController := controller.NewStatisticsController(
			record.NewGetStatisticsUseCase(recordRepo),
		)

		r := router.NewRouter(
			healthController,
			categoryController,
			trackerController,
			recordController,
			statisticsController,
			nil,
		)
		tc.engine = r.Setup("test")
		tc.server = httptest.NewServer(tc.engine)

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil {
			if tc.server != nil {
				tc.server.Close()
			}
			if tc.bus != nil {
				tc.bus.Close()
			}
		}
		return ctx, nil
	})

	registerSeedSteps(ctx)
	registerAPISteps(ctx)
	registerResponseSteps(ctx)
}

// registerSeedSteps registers store-seeding steps.
func registerSeedSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the following trackers exist:$`, theFollowingTrackersExist)
	ctx.Step(`^tracker "([^"]*)" is completed on "([^"]*)"$`, trackerIsCompletedOn)
	ctx.Step(`^category "([^"]*)" exists$`, categoryExists)
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I update tracker "([^"]*)" with body:$`, iUpdateTrackerWithBody)
	ctx.Step(`^I delete tracker "([^"]*)"$`, iDeleteTracker)
	ctx.Step(`^I complete tracker "([^"]*)" on "([^"]*)"$`, iCompleteTrackerOn)
	ctx.Step(`^I complete tracker "([^"]*)" tomorrow$`, iCompleteTrackerTomorrow)
	ctx.Step(`^I uncomplete tracker "([^"]*)" on "([^"]*)"$`, iUncompleteTrackerOn)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response should not contain "([^"]*)"$`, theResponseShouldNotContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the visible list should have (\d+) sections$`, theVisibleListShouldHaveSections)
	ctx.Step(`^the placeholder should be "([^"]*)"$`, thePlaceholderShouldBe)
}
