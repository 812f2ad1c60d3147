// Package main is the entry point for the FishMate API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/fishmate/backend/config"
	"github.com/fishmate/backend/internal/application/adapter"
	"github.com/fishmate/backend/internal/application/usecase/analytics"
	"github.com/fishmate/backend/internal/application/usecase/catchlog"
	"github.com/fishmate/backend/internal/application/usecase/community"
	"github.com/fishmate/backend/internal/application/usecase/profile"
	"github.com/fishmate/backend/internal/application/usecase/weather"
	"github.com/fishmate/backend/internal/infra/cache"
	"github.com/fishmate/backend/internal/infra/db"
	"github.com/fishmate/backend/internal/infra/server/router"
	"github.com/fishmate/backend/internal/integration/adapters"
	"github.com/fishmate/backend/internal/integration/entrypoint/controller"
	"github.com/fishmate/backend/internal/integration/entrypoint/middleware"
	"github.com/fishmate/backend/internal/integration/persistence"
	"github.com/fishmate/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting FishMate API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	var database *db.Database
	var dbHealthChecker func() bool

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Warn("Database connection failed, running without database",
			"error", err,
		)
		dbHealthChecker = func() bool { return false }
	} else {
		// Run database migrations
		if err := database.AutoMigrate(
			&model.UserModel{},
			&model.CatchModel{},
			&model.PostModel{},
		); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Database migrations completed successfully")

		dbHealthChecker = database.HealthCheck
		defer func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}()
	}

	// Create health controller with database health checker
	healthController := controller.NewHealthController(dbHealthChecker)

	// Create controllers (only if database is available)
	var analyticsController *controller.AnalyticsController
	var catchController *controller.CatchController
	var profileController *controller.ProfileController
	var postController *controller.PostController

	if database != nil {
		// Create repositories
		catchRepo := persistence.NewCatchRepository(database.DB())
		analyticsRepo := persistence.NewAnalyticsRepository(database.DB())
		userRepo := persistence.NewUserRepository(database.DB())
		postRepo := persistence.NewPostRepository(database.DB())

		clock := adapters.NewSystemClock()

		// Create analytics use cases
		getSummaryUseCase := analytics.NewGetSummaryUseCase(analyticsRepo)
		getWeeklyHistogramUseCase := analytics.NewGetWeeklyHistogramUseCase(analyticsRepo, clock)
		getSpeciesDistributionUseCase := analytics.NewGetSpeciesDistributionUseCase(analyticsRepo)

		// Create catch use cases
		createCatchUseCase := catchlog.NewCreateCatchUseCase(catchRepo)
		listCatchesUseCase := catchlog.NewListCatchesUseCase(catchRepo)
		getCatchUseCase := catchlog.NewGetCatchUseCase(catchRepo)
		correctCatchUseCase := catchlog.NewCorrectCatchUseCase(catchRepo)
		deleteCatchUseCase := catchlog.NewDeleteCatchUseCase(catchRepo)

		// Create profile use cases
		createProfileUseCase := profile.NewCreateProfileUseCase(userRepo)
		getProfileUseCase := profile.NewGetProfileUseCase(userRepo)
		updateProfileUseCase := profile.NewUpdateProfileUseCase(userRepo)

		// Create community use cases
		createPostUseCase := community.NewCreatePostUseCase(postRepo)
		listPostsUseCase := community.NewListPostsUseCase(postRepo)
		likePostUseCase := community.NewLikePostUseCase(postRepo)
		deletePostUseCase := community.NewDeletePostUseCase(postRepo)

		analyticsController = controller.NewAnalyticsController(
			getSummaryUseCase,
			getWeeklyHistogramUseCase,
			getSpeciesDistributionUseCase,
		)
		catchController = controller.NewCatchController(
			createCatchUseCase,
			listCatchesUseCase,
			getCatchUseCase,
			correctCatchUseCase,
			deleteCatchUseCase,
		)
		profileController = controller.NewProfileController(
			createProfileUseCase,
			getProfileUseCase,
			updateProfileUseCase,
		)
		postController = controller.NewPostController(
			createPostUseCase,
			listPostsUseCase,
			likePostUseCase,
			deletePostUseCase,
		)

		slog.Info("Catch, analytics, profile and community systems initialized successfully")
	} else {
		slog.Warn("API systems not initialized due to missing database connection")
	}

	// Weather proxy runs without a cache when Redis is disabled or down
	var weatherCache adapter.WeatherCache
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(&cfg.Redis)
		if err != nil {
			slog.Warn("Redis connection failed, weather proxy will run without cache",
				"error", err,
			)
		} else {
			weatherCache = adapters.NewRedisWeatherCache(redisClient)
			defer func() {
				if err := redisClient.Close(); err != nil {
					slog.Error("Failed to close redis connection", "error", err)
				}
			}()
		}
	}

	weatherProvider := adapters.NewOpenMeteoClient(&cfg.Weather)
	getForecastUseCase := weather.NewGetForecastUseCase(weatherProvider, weatherCache, cfg.Weather.CacheTTL)
	weatherController := controller.NewWeatherController(getForecastUseCase)
	weatherRateLimiter := middleware.NewRateLimiterWithConfig(cfg.Weather.RateLimitRequests, cfg.Weather.RateLimitWindow)

	// Setup router
	r := router.NewRouter(
		healthController,
		analyticsController,
		catchController,
		profileController,
		postController,
		weatherController,
		weatherRateLimiter,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
