package routes

import (
	"workforce-scheduler-backend/internal/api/handlers"
	"workforce-scheduler-backend/internal/api/middleware"
	"workforce-scheduler-backend/internal/auth"
	"workforce-scheduler-backend/internal/config"
	"workforce-scheduler-backend/internal/repository"
	"workforce-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application. The engine is
// constructed in main and passed in so that its background loops share the
// exact instances the manual trigger endpoints hit.
func SetupRoutes(db *gorm.DB, cfg *config.Config, engine service.EngineInterface) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	eventRepo := repository.NewEventDefinitionRepository(db)
	taskRepo := repository.NewTaskInstanceRepository(db)
	alertRepo := repository.NewDelayAlertRepository(db)

	// Initialize services
	eventService := service.NewEventService(eventRepo, taskRepo, validator)
	taskService := service.NewTaskService(taskRepo, validator)
	alertService := service.NewAlertService(alertRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	eventHandler := handlers.NewEventHandler(eventService)
	taskHandler := handlers.NewTaskHandler(taskService)
	alertHandler := handlers.NewAlertHandler(alertService)
	engineHandler := handlers.NewEngineHandler(engine)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes, bearer token required
	authMiddleware := auth.NewMiddleware(cfg.JWTSecret)
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		events := v1.Group("/events")
		{
			events.POST("", eventHandler.CreateEvent)
			events.GET("", eventHandler.ListEvents)
			events.GET("/:id", eventHandler.GetEvent)
			events.PUT("/:id", eventHandler.UpdateEvent)
			events.POST("/:id/deactivate", eventHandler.DeactivateEvent)
			events.DELETE("/:id", eventHandler.DeleteEvent)
		}

		tasks := v1.Group("/tasks")
		{
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("", taskHandler.ListTasks)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.POST("/:id/complete", taskHandler.CompleteTask)
			tasks.PATCH("/:id", taskHandler.OverrideTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
			tasks.GET("/:id/alerts", alertHandler.ListTaskAlerts)
		}

		alerts := v1.Group("/alerts")
		{
			alerts.GET("", alertHandler.ListOpenAlerts)
			alerts.POST("/:id/acknowledge", alertHandler.AcknowledgeAlert)
		}

		engineGroup := v1.Group("/engine")
		{
			engineGroup.POST("/materialize", engineHandler.Materialize)
			engineGroup.POST("/evaluate", engineHandler.Evaluate)
		}
	}

	return router
}
