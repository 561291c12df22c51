package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/smthh4/cc13.1-finals-project/config"
	deliveryHttp "github.com/smthh4/cc13.1-finals-project/internal/delivery/http"
	"github.com/smthh4/cc13.1-finals-project/internal/delivery/http/handler"
	"github.com/smthh4/cc13.1-finals-project/internal/delivery/http/middleware"
	"github.com/smthh4/cc13.1-finals-project/internal/infrastructure/storage"
	"github.com/smthh4/cc13.1-finals-project/internal/repository"
	"github.com/smthh4/cc13.1-finals-project/internal/usecase"
	"github.com/smthh4/cc13.1-finals-project/pkg/validator"
)

// App holds all dependencies for the application
type App struct {
	Config *config.Config
	Server *http.Server
	State  usecase.StateUsecase
}

// New creates a new App instance with all dependencies initialized and
// the persisted clinic state loaded.
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	setupLogger(cfg)
	logrus.Info("Configuration loaded successfully")

	// Initialize all layers
	server, stateUsecase := initializeServer(cfg)
	app.Server = server
	app.State = stateUsecase

	// Restore durable state; a failed load starts the clinic empty.
	if err := app.State.Load(); err != nil {
		logrus.Warnf("Continuing with empty clinic state: %v", err)
	}

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(cfg *config.Config) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// initializeServer wires repositories, usecases, handlers and the router
// into an HTTP server.
func initializeServer(cfg *config.Config) (*http.Server, usecase.StateUsecase) {
	log := logrus.StandardLogger()

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	doctorRegistry := repository.NewDoctorRegistry()
	roomRegistry := repository.NewRoomRegistry()
	waitingQueue := repository.NewWaitingQueue()
	patientDirectory := repository.NewPatientDirectory()
	historyStore := repository.NewHistoryStore()

	// Initialize persistence
	stateStore := storage.NewFileStore(cfg.Storage.File, log)

	// One clinic-wide lock serializes every engine operation; the HTTP
	// server is concurrent but the clinic state has a single writer.
	var clinicMu sync.Mutex

	// Initialize usecases
	intakeUsecase := usecase.NewIntakeUsecase(&clinicMu, log, doctorRegistry, roomRegistry, waitingQueue, patientDirectory, historyStore)
	doctorUsecase := usecase.NewDoctorUsecase(&clinicMu, log, doctorRegistry, waitingQueue)
	roomUsecase := usecase.NewRoomUsecase(&clinicMu, log, roomRegistry)
	historyUsecase := usecase.NewHistoryUsecase(&clinicMu, log, patientDirectory, historyStore)
	stateUsecase := usecase.NewStateUsecase(&clinicMu, log, stateStore, doctorRegistry, roomRegistry, waitingQueue, patientDirectory, historyStore)

	// Initialize handlers
	patientHandler := handler.NewPatientHandler(intakeUsecase, historyUsecase, customValidator)
	treatmentHandler := handler.NewTreatmentHandler(intakeUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	roomHandler := handler.NewRoomHandler(roomUsecase, customValidator)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()
	requestIDMiddleware := middleware.NewRequestIDMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(patientHandler, treatmentHandler, doctorHandler, roomHandler, corsMiddleware, requestIDMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
	return server, stateUsecase
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

	// Persist clinic state; a failed save loses durability only.
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close writes the clinic state to durable storage.
func (app *App) Close() {
	if app.State != nil {
		if err := app.State.Save(); err != nil {
			logrus.Errorf("State not persisted: %v", err)
		}
	}
}
