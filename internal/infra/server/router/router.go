// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/fishmate/backend/internal/integration/entrypoint/controller"
	"github.com/fishmate/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	analyticsController *controller.AnalyticsController
	catchController     *controller.CatchController
	profileController   *controller.ProfileController
	postController      *controller.PostController
	weatherController   *controller.WeatherController
	weatherRateLimiter  *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	analyticsController *controller.AnalyticsController,
	catchController *controller.CatchController,
	profileController *controller.ProfileController,
	postController *controller.PostController,
	weatherController *controller.WeatherController,
	weatherRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:    healthController,
		analyticsController: analyticsController,
		catchController:     catchController,
		profileController:   profileController,
		postController:      postController,
		weatherController:   weatherController,
		weatherRateLimiter:  weatherRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAnalyticsRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAnalyticsRoutes configures the analytics endpoints. These live at the
// root rather than under /api/v1 because the mobile clients consume them at
// fixed paths.
func (r *Router) setupAnalyticsRoutes() {
	if r.analyticsController == nil {
		return
	}

	analytics := r.engine.Group("/analytics")
	{
		analytics.GET("/summary/:userId", r.analyticsController.GetSummary)
		analytics.GET("/weekly/:userId", r.analyticsController.GetWeeklyHistogram)
		analytics.GET("/species/:userId", r.analyticsController.GetSpeciesDistribution)
	}
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Catch logging routes
		if r.catchController != nil {
			catches := v1.Group("/catches")
			{
				catches.POST("", r.catchController.Create)
				catches.GET("", r.catchController.List)
				catches.GET("/:id", r.catchController.Get)
				catches.PATCH("/:id", r.catchController.Correct)
				catches.DELETE("/:id", r.catchController.Delete)
			}
		}

		// User profile routes
		if r.profileController != nil {
			users := v1.Group("/users")
			{
				users.POST("", r.profileController.Create)
				users.GET("/:id", r.profileController.Get)
				users.PATCH("/:id", r.profileController.Update)
			}
		}

		// Community post routes
		if r.postController != nil {
			posts := v1.Group("/posts")
			{
				posts.POST("", r.postController.Create)
				posts.GET("", r.postController.List)
				posts.POST("/:id/like", r.postController.Like)
				posts.DELETE("/:id", r.postController.Delete)
			}
		}

		// Weather proxy routes (rate limited to protect the upstream quota)
		if r.weatherController != nil {
			weather := v1.Group("/weather")
			if r.weatherRateLimiter != nil {
				weather.Use(r.weatherRateLimiter.Middleware())
			}
			{
				weather.GET("/forecast", r.weatherController.GetForecast)
				weather.GET("/marine", r.weatherController.GetMarine)
			}
		}
	}
}
