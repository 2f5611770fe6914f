package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ClinicaAdmin/backend"
	"ClinicaAdmin/cache"
	"ClinicaAdmin/config"
	"ClinicaAdmin/controllers"
	"ClinicaAdmin/handlers"
	"ClinicaAdmin/middlewares"
	"ClinicaAdmin/services"
	"ClinicaAdmin/session"
	"ClinicaAdmin/utils"
)

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(cache *cache.Cache, config *config.AppConfig) http.Handler {
	// Set Gin to release mode
	gin.SetMode(gin.ReleaseMode)

	// Create a Gin router
	router := gin.Default()

	// Create and apply CORS middleware configuration
	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	// Apply rate limiter middleware
	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15, // 15 requests per second
		Burst:             30, // Burst of 30
	}))

	// Apply logging middleware
	router.Use(middlewares.LoggingMiddleware())

	// Initialize the backend access layer, session store and services
	backendClient := backend.NewClient(config.BackendURL)
	sessionStore := session.NewStore(cache)
	mailer := utils.NewMailerFromEnv()

	appointmentHandler := handlers.NewAppointmentHandler(services.NewAppointmentService(backendClient))
	patientHandler := handlers.NewPatientHandler(services.NewPatientService(backendClient))
	doctorHandler := handlers.NewDoctorHandler(services.NewDoctorService(backendClient))
	insurerHandler := handlers.NewInsurerHandler(services.NewInsurerService(backendClient))
	billingHandler := handlers.NewBillingHandler(services.NewBillingService(backendClient))
	userHandler := handlers.NewUserHandler(services.NewUserService(backendClient, mailer))
	authHandler := handlers.NewAuthHandler(services.NewAuthService(backendClient, sessionStore, cache))

	// Everything except login and the root route sits behind the session gate
	authenticated := router.Group("/", middlewares.SessionAuthMiddleware(sessionStore))

	controllers.SetupResourceRoutes(
		authenticated,
		appointmentHandler,
		patientHandler,
		doctorHandler,
		insurerHandler,
		billingHandler,
	)

	authController := controllers.NewAuthController(authHandler, userHandler)
	authController.RegisterRoutes(router, authenticated)

	controllers.SetupRootRoute(router)

	return router
}
