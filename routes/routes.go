package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medcare/config"
	"medcare/controllers"
	"medcare/datastore"
	"medcare/handlers"
	"medcare/middlewares"
	"medcare/services"
	"medcare/session"
)

// SetupRoutes initializes the routes and middleware for the server.
func SetupRoutes(cfg *config.AppConfig, store *datastore.Store, sessions *session.Store) http.Handler {
	gin.SetMode(cfg.Server.Mode)

	// LoggingMiddleware is the single request logger, so skip gin's.
	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   cfg.Cors.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		Burst:             cfg.RateLimit.Burst,
	}))

	router.Use(middlewares.LoggingMiddleware())

	// Initialize services and handlers over the two stores.
	authService := services.NewAuthService(sessions)
	patientHandler := handlers.NewPatientHandler(services.NewPatientService(store))
	appointmentHandler := handlers.NewAppointmentHandler(services.NewAppointmentService(store))
	ehrHandler := handlers.NewEHRHandler(services.NewEHRService(store))
	inventoryHandler := handlers.NewInventoryHandler(services.NewInventoryService(store))
	billingHandler := handlers.NewBillingHandler(services.NewBillingService(store))
	dashboardHandler := handlers.NewDashboardHandler(services.NewDashboardService(store))
	adminHandler := handlers.NewAdminHandler(store)
	authHandler := handlers.NewAuthHandler(authService)

	authController := controllers.NewAuthController(authHandler)
	authController.RegisterRoutes(router, authService)

	controllers.SetupClinicalRoutes(
		router,
		authService,
		patientHandler,
		appointmentHandler,
		ehrHandler,
		inventoryHandler,
		billingHandler,
		dashboardHandler,
		adminHandler,
	)

	controllers.SetupRootRoute(router)

	return router
}
