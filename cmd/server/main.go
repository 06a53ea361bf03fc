package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"workforce-scheduler-backend/internal/api/routes"
	"workforce-scheduler-backend/internal/config"
	"workforce-scheduler-backend/internal/database"
	"workforce-scheduler-backend/internal/repository"
	"workforce-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "workforce-scheduler-backend/docs" // This is needed for swag
)

//	@title			Workforce Scheduler Backend API
//	@version		1.0
//	@description	Backend API for the retail workforce scheduling engine: recurring event definitions, materialized task instances, and delay alerts.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7010
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Load store opening hours, evaluation is suppressed outside them
	storeHours, err := config.LoadStoreHours(cfg.StoreHoursFile)
	if err != nil {
		logrus.Fatal("Failed to load store hours:", err)
	}

	// Build the scheduling engine
	eventRepo := repository.NewEventDefinitionRepository(db)
	taskRepo := repository.NewTaskInstanceRepository(db)
	alertRepo := repository.NewDelayAlertRepository(db)

	notifier := service.NewFanoutNotifier(
		service.NewLogNotifier(),
		service.NewStreamNotifier(64),
	)
	materializer := service.NewMaterializer(eventRepo, taskRepo)
	evaluator := service.NewDelayEvaluator(taskRepo, alertRepo, notifier, storeHours, cfg.GracePeriod(), cfg.EscalationPeriod())
	scheduler := service.NewSchedulerService(time.Local)
	engine := service.NewSchedulingEngine(materializer, evaluator, scheduler, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := engine.Start(ctx); err != nil {
		logrus.Fatal("Failed to start scheduling engine:", err)
	}
	defer engine.Stop()

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg, engine)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7010"
	}

	logrus.Infof("Starting server on port %s", port)
	go func() {
		if err := router.Run(":" + port); err != nil {
			logrus.Fatal("Failed to start server:", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutdown signal received, stopping")
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
