// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/fishmate/backend/config"
	"github.com/fishmate/backend/internal/application/usecase/analytics"
	"github.com/fishmate/backend/internal/application/usecase/catchlog"
	"github.com/fishmate/backend/internal/application/usecase/community"
	"github.com/fishmate/backend/internal/application/usecase/profile"
	"github.com/fishmate/backend/internal/application/usecase/weather"
	"github.com/fishmate/backend/internal/domain/entity"
	"github.com/fishmate/backend/internal/infra/server/router"
	"github.com/fishmate/backend/internal/integration/adapters"
	"github.com/fishmate/backend/internal/integration/entrypoint/controller"
	"github.com/fishmate/backend/internal/integration/persistence"
	"github.com/fishmate/backend/internal/integration/persistence/model"
	"github.com/fishmate/backend/test/integration/mock"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	engine       *gin.Engine
	response     *http.Response
	responseBody []byte

	// Doubles
	db       *gorm.DB
	clock    *mock.Clock
	redis    *mock.Redis
	upstream *mock.WeatherServer
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

// InitializeScenario registers all step definitions and wires a full
// application instance backed by in-process doubles for each scenario.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc := &TestContext{
			db:       mock.NewDb(),
			clock:    mock.NewClock(),
			redis:    mock.NewRedis(),
			upstream: mock.NewWeatherServer(),
		}

		tc.engine = buildEngine(tc)
		tc.server = httptest.NewServer(tc.engine)

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil {
			if tc.server != nil {
				tc.server.Close()
			}
			if tc.redis != nil {
				tc.redis.Close()
			}
			if tc.upstream != nil {
				tc.upstream.Close()
			}
		}
		return ctx, nil
	})

	registerGivenSteps(ctx)
	registerAPISteps(ctx)
	registerResponseSteps(ctx)
}

// buildEngine wires the full stack against the scenario's doubles.
func buildEngine(tc *TestContext) *gin.Engine {
	catchRepo := persistence.NewCatchRepository(tc.db)
	analyticsRepo := persistence.NewAnalyticsRepository(tc.db)
	userRepo := persistence.NewUserRepository(tc.db)
	postRepo := persistence.NewPostRepository(tc.db)

	analyticsController := controller.NewAnalyticsController(
		analytics.NewGetSummaryUseCase(analyticsRepo),
		analytics.NewGetWeeklyHistogramUseCase(analyticsRepo, tc.clock),
		analytics.NewGetSpeciesDistributionUseCase(analyticsRepo),
	)
	catchController := controller.NewCatchController(
		catchlog.NewCreateCatchUseCase(catchRepo),
		catchlog.NewListCatchesUseCase(catchRepo),
		catchlog.NewGetCatchUseCase(catchRepo),
		catchlog.NewCorrectCatchUseCase(catchRepo),
		catchlog.NewDeleteCatchUseCase(catchRepo),
	)
	profileController := controller.NewProfileController(
		profile.NewCreateProfileUseCase(userRepo),
		profile.NewGetProfileUseCase(userRepo),
		profile.NewUpdateProfileUseCase(userRepo),
	)
	postController := controller.NewPostController(
		community.NewCreatePostUseCase(postRepo),
		community.NewListPostsUseCase(postRepo),
		community.NewLikePostUseCase(postRepo),
		community.NewDeletePostUseCase(postRepo),
	)

	weatherCfg := &config.WeatherConfig{
		ForecastBaseURL: tc.upstream.URL(),
		MarineBaseURL:   tc.upstream.URL(),
		RequestTimeout:  5 * time.Second,
		CacheTTL:        15 * time.Minute,
	}
	weatherProvider := adapters.NewOpenMeteoClient(weatherCfg)
	weatherCache := adapters.NewRedisWeatherCache(tc.redis.Client)
	weatherController := controller.NewWeatherController(
		weather.NewGetForecastUseCase(weatherProvider, weatherCache, weatherCfg.CacheTTL),
	)

	healthController := controller.NewHealthController(func() bool { return true })

	r := router.NewRouter(
		healthController,
		analyticsController,
		catchController,
		profileController,
		postController,
		weatherController,
		nil, // no rate limiter in tests
	)

	return r.Setup("test")
}

// registerGivenSteps registers data and environment setup steps.
func registerGivenSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the current time is "([^"]*)"$`, theCurrentTimeIs)
	ctx.Step(`^the following catches exist:$`, theFollowingCatchesExist)
	ctx.Step(`^a user profile exists with id "([^"]*)" and name "([^"]*)"$`, aUserProfileExists)
	ctx.Step(`^the upstream weather service responds with:$`, theUpstreamRespondsWith)
	ctx.Step(`^the upstream weather service is unavailable$`, theUpstreamIsUnavailable)
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the response should match json:$`, theResponseShouldMatchJSON)
}

// Given step implementations

func theCurrentTimeIs(ctx context.Context, timestamp string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	t, err := time.Parse(time.RFC3339, timestamp)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", timestamp, err)
	}

	tc.clock.Set(t)
	return nil
}

func theFollowingCatchesExist(ctx context.Context, table *godog.Table) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	if len(table.Rows) < 2 {
		return fmt.Errorf("expected a header row and at least one data row")
	}

	header := make(map[string]int, len(table.Rows[0].Cells))
	for i, cell := range table.Rows[0].Cells {
		header[cell.Value] = i
	}

	cell := func(row int, name string) string {
		idx, ok := header[name]
		if !ok {
			return ""
		}
		return table.Rows[row].Cells[idx].Value
	}

	for i := 1; i < len(table.Rows); i++ {
		userID, err := uuid.Parse(cell(i, "user_id"))
		if err != nil {
			return fmt.Errorf("row %d: invalid user_id: %w", i, err)
		}

		quantity, err := strconv.Atoi(cell(i, "quantity"))
		if err != nil {
			return fmt.Errorf("row %d: invalid quantity: %w", i, err)
		}

		weightKg, err := decimal.NewFromString(cell(i, "weight_kg"))
		if err != nil {
			return fmt.Errorf("row %d: invalid weight_kg: %w", i, err)
		}

		totalPrice, err := decimal.NewFromString(cell(i, "total_price"))
		if err != nil {
			return fmt.Errorf("row %d: invalid total_price: %w", i, err)
		}

		caughtAt, err := time.Parse(time.RFC3339, cell(i, "caught_at"))
		if err != nil {
			return fmt.Errorf("row %d: invalid caught_at: %w", i, err)
		}

		c := &entity.Catch{
			ID:         uuid.New(),
			UserID:     userID,
			Species:    cell(i, "species"),
			Quantity:   quantity,
			WeightKg:   weightKg,
			TotalPrice: totalPrice,
			CreatedAt:  caughtAt,
			UpdatedAt:  caughtAt,
		}

		if err := tc.db.Create(model.CatchFromEntity(c)).Error; err != nil {
			return fmt.Errorf("row %d: failed to seed catch: %w", i, err)
		}
	}

	return nil
}

func aUserProfileExists(ctx context.Context, id, name string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	userID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid user id: %w", err)
	}

	u := entity.NewUser(name, "", "", "", "")
	u.ID = userID

	return tc.db.Create(model.UserFromEntity(u)).Error
}

func theUpstreamRespondsWith(ctx context.Context, body *godog.DocString) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.upstream.Respond(body.Content, http.StatusOK)
	return nil
}

func theUpstreamIsUnavailable(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.upstream.Respond(`{"error":"unavailable"}`, http.StatusServiceUnavailable)
	return nil
}

// API step implementations

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) (context.Context, error) {
	return doRequest(ctx, method, endpoint, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) (context.Context, error) {
	return doRequest(ctx, method, endpoint, bytes.NewBufferString(body.Content))
}

func doRequest(ctx context.Context, method, endpoint string, body io.Reader) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	req, err := http.NewRequest(method, tc.server.URL+endpoint, body)
	if err != nil {
		return ctx, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return ctx, fmt.Errorf("failed to send request: %w", err)
	}

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return ctx, fmt.Errorf("failed to read response body: %w", err)
	}

	return SetTestContext(ctx, tc), nil
}

// Response step implementations

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldBeJSON(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	var js json.RawMessage
	if err := json.Unmarshal(tc.responseBody, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if !strings.Contains(string(tc.responseBody), expected) {
		return fmt.Errorf("response does not contain '%s'. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var data map[string]interface{}
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return fmt.Errorf("failed to parse response JSON: %w", err)
	}

	value, ok := data[field]
	if !ok {
		return fmt.Errorf("field '%s' not found in response", field)
	}

	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expected, actual)
	}

	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var data map[string]interface{}
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return fmt.Errorf("failed to parse response JSON: %w", err)
	}

	if _, ok := data[field]; !ok {
		return fmt.Errorf("field '%s' not found in response", field)
	}

	return nil
}

func theResponseShouldMatchJSON(ctx context.Context, body *godog.DocString) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var expected, actual interface{}

	if err := json.Unmarshal([]byte(body.Content), &expected); err != nil {
		return fmt.Errorf("failed to parse expected JSON: %w", err)
	}

	if err := json.Unmarshal(tc.responseBody, &actual); err != nil {
		return fmt.Errorf("failed to parse response JSON: %w", err)
	}

	expectedJSON, _ := json.Marshal(expected)
	actualJSON, _ := json.Marshal(actual)

	if string(expectedJSON) != string(actualJSON) {
		return fmt.Errorf("expected JSON:\n%s\nactual JSON:\n%s", string(expectedJSON), string(actualJSON))
	}

	return nil
}
