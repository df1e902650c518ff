package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-clinic-scheduling/config"
	deliveryHttp "go-clinic-scheduling/internal/delivery/http"
	"go-clinic-scheduling/internal/delivery/http/handler"
	"go-clinic-scheduling/internal/delivery/http/middleware"
	"go-clinic-scheduling/internal/infrastructure/cache"
	"go-clinic-scheduling/internal/infrastructure/persistence"
	"go-clinic-scheduling/internal/repository"
	"go-clinic-scheduling/internal/service"
	"go-clinic-scheduling/internal/usecase"
	"go-clinic-scheduling/pkg/jwt"
	"go-clinic-scheduling/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config          *config.Config
	RedisClient     *redis.Client
	SnapshotService *service.SnapshotService
	Server          *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Redis is optional; without it token revocation and notification
	// fan-out are skipped, everything else works unchanged.
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		logrus.Warnf("Redis unavailable, continuing without it: %+v", err)
		redisClient = nil
	}
	app.RedisClient = redisClient

	server, snapshotService, err := initializeServer(cfg, redisClient)
	if err != nil {
		return nil, err
	}
	app.Server = server
	app.SnapshotService = snapshotService

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer wires every layer and restores state from the snapshot
// artifact, seeding starter data when no usable artifact exists.
func initializeServer(cfg *config.Config, redisClient *redis.Client) (*http.Server, *service.SnapshotService, error) {
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()
	log := logrus.StandardLogger()

	// Initialize stores
	userRepo := repository.NewUserRepository()
	practitionerRepo := repository.NewPractitionerRepository()
	appointmentRepo := repository.NewAppointmentRepository()

	// Initialize services
	notificationService := service.NewNotificationService(log, redisClient)
	snapshotStore := persistence.NewSnapshotStore(cfg.Snapshot.Path)
	snapshotService := service.NewSnapshotService(log, snapshotStore, userRepo, practitionerRepo, appointmentRepo)

	// State restore happens before the server accepts traffic.
	if err := snapshotService.LoadOrSeed(context.Background()); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize state: %w", err)
	}

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(log, userRepo, notificationService, jwtService, redisClient)
	schedulingUsecase := usecase.NewSchedulingUsecase(log, userRepo, practitionerRepo, appointmentRepo, notificationService)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	practitionerHandler := handler.NewPractitionerHandler(schedulingUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(schedulingUsecase, customValidator)
	systemHandler := handler.NewSystemHandler(schedulingUsecase, snapshotService)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(authHandler, practitionerHandler, appointmentHandler, systemHandler, authMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
	return server, snapshotService, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// The whole state is rewritten on the way out so a restart resumes
	// where this run left off.
	if err := app.SnapshotService.Save(ctx); err != nil {
		logrus.Errorf("Failed to save snapshot on shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections
func (app *App) Close() {
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
