package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"holistic-health-backend/config"
	deliveryHttp "holistic-health-backend/internal/delivery/http"
	"holistic-health-backend/internal/delivery/http/handler"
	"holistic-health-backend/internal/delivery/http/middleware"
	"holistic-health-backend/internal/domain/entity"
	domainRepo "holistic-health-backend/internal/domain/repository"
	"holistic-health-backend/internal/infrastructure/cache"
	"holistic-health-backend/internal/infrastructure/database"
	"holistic-health-backend/internal/repository"
	"holistic-health-backend/internal/service"
	"holistic-health-backend/internal/usecase"
	"holistic-health-backend/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server

	planUsecase usecase.PlanUsecase
}

// repositories groups the storage backends selected by the storage driver
type repositories struct {
	profile   domainRepo.UserProfileRepository
	mealPlan  domainRepo.MealPlanRepository
	timetable domainRepo.TimetableRepository
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize storage backend
	repos, err := app.initializeStorage(cfg)
	if err != nil {
		return nil, err
	}

	// Initialize Redis when enabled; plan caching is optional
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		logrus.Info("Redis connected successfully")
	}

	// Initialize all layers
	server := app.initializeServer(cfg, repos)
	app.Server = server

	return app, nil
}

// initializeStorage selects repositories for the configured driver. The
// in-memory driver skips the database entirely; the gorm repositories are
// only wired for postgres.
func (app *App) initializeStorage(cfg *config.Config) (*repositories, error) {
	switch cfg.Storage.Driver {
	case "postgres":
		db, err := database.NewPostgresConnection(cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := db.AutoMigrate(&entity.UserProfile{}, &entity.MealPlan{}, &entity.Timetable{}); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		app.DB = db
		logrus.Info("Database connected successfully")

		return &repositories{
			profile:   repository.NewUserProfileRepository(),
			mealPlan:  repository.NewMealPlanRepository(),
			timetable: repository.NewTimetableRepository(),
		}, nil
	case "memory":
		logrus.Info("Using in-memory storage")

		return &repositories{
			profile:   repository.NewMemoryUserProfileRepository(),
			mealPlan:  repository.NewMemoryMealPlanRepository(),
			timetable: repository.NewMemoryTimetableRepository(),
		}, nil
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.Storage.Driver)
	}
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func (app *App) initializeServer(cfg *config.Config, repos *repositories) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize services
	planGenerator := service.NewPlanGenerator(cfg.OpenAI, log)

	var planCache service.PlanCache
	if app.RedisClient != nil {
		planCache = service.NewPlanCache(app.RedisClient, log)
	}

	// Initialize usecases
	profileUsecase := usecase.NewUserProfileUsecase(app.DB, log, repos.profile)
	planUsecase := usecase.NewPlanUsecase(app.DB, log, repos.profile, repos.mealPlan, repos.timetable, planGenerator, planCache)
	app.planUsecase = planUsecase

	// Initialize handlers
	profileHandler := handler.NewProfileHandler(profileUsecase, customValidator)
	planHandler := handler.NewPlanHandler(planUsecase, customValidator)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(profileHandler, planHandler, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Stop background workers
	if app.planUsecase != nil {
		app.planUsecase.Stop()
	}

	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
