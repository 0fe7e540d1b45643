package routes

import (
	"context"

	"voltflow-backend/internal/api/handlers"
	"voltflow-backend/internal/api/middleware"
	"voltflow-backend/internal/config"
	"voltflow-backend/internal/location"
	"voltflow-backend/internal/repository"
	"voltflow-backend/internal/services"
	"voltflow-backend/internal/session"
	"voltflow-backend/internal/tomtom"
	"voltflow-backend/pkg/biometric"
	"voltflow-backend/pkg/credentials"
	"voltflow-backend/pkg/jwt"
	"voltflow-backend/pkg/redis"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func SetupRoutes(router *gin.Engine, db *mongo.Database, redisClient *redis.Client, cfg *config.Config) {
	// Initialize repositories and shared state
	userRepo := repository.NewUserRepository(db)
	sessions := session.NewStore()
	locationProvider := location.NewProvider(cfg.DistanceFilterM)
	jwtUtil := jwt.NewJWTUtil(cfg.JWTSecret, cfg.JWTExpiry)

	directory := tomtom.NewClient(cfg.TomTomAPIKey,
		tomtom.WithRadius(cfg.SearchRadiusM),
		tomtom.WithLimit(cfg.SearchLimit),
	)

	credentialStore := credentials.NewStore(redisClient.GetClient(), "credentials:")
	authenticator := biometric.NewDeviceAuthenticator(cfg.BiometricCapability, cfg.BiometricSecret)

	// Initialize services
	authService := services.NewAuthService(userRepo, jwtUtil, sessions)
	userService := services.NewUserService(userRepo, sessions)
	stationService := services.NewStationService(directory, locationProvider)
	carService := services.NewCarService()
	energyService := services.NewEnergyService()
	credentialService := services.NewCredentialService(credentialStore, authenticator)

	// Station refreshes follow location updates for the server lifetime.
	stationService.Start(context.Background())

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	stationHandler := handlers.NewStationHandler(stationService)
	locationHandler := handlers.NewLocationHandler(locationProvider)
	carHandler := handlers.NewCarHandler(carService)
	energyHandler := handlers.NewEnergyHandler(energyService)
	credentialHandler := handlers.NewCredentialHandler(credentialService)
	healthHandler := handlers.NewHealthHandler(db, redisClient)

	router.GET("/health", healthHandler.Health)

	// API routes
	api := router.Group("/api/v1")

	// Public routes
	auth := api.Group("/auth")
	{
		auth.POST("/signup", authHandler.SignUp)
		auth.POST("/signin", authHandler.SignIn)
		auth.POST("/signout", authHandler.SignOut)
		auth.GET("/session", authHandler.GetSession)
	}

	// Protected routes
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(jwtUtil))
	{
		protected.GET("/profile", authHandler.GetProfile)

		// Users
		users := protected.Group("/users/me")
		{
			users.GET("", userHandler.GetMe)
			users.PUT("/preferences", userHandler.UpdatePreferences)
			users.PUT("/favorites/:stationId", userHandler.AddFavoriteStation)
			users.DELETE("/favorites/:stationId", userHandler.RemoveFavoriteStation)
			users.PUT("/cars/:carId", userHandler.AddCar)
			users.DELETE("/cars/:carId", userHandler.RemoveCar)
		}

		// Stations
		stations := protected.Group("/stations")
		{
			stations.GET("", stationHandler.GetStations)
			stations.POST("/refresh", stationHandler.RefreshStations)
			stations.GET("/filters", stationHandler.GetFilters)
			stations.PUT("/filters", stationHandler.UpdateFilters)
			stations.GET("/selection", stationHandler.GetSelectedStation)
			stations.PUT("/selection/:id", stationHandler.SelectStation)
			stations.DELETE("/selection", stationHandler.ClearSelectedStation)
		}

		// Location
		loc := protected.Group("/location")
		{
			loc.GET("", locationHandler.GetLocation)
			loc.POST("/permission", locationHandler.UpdatePermission)
			loc.POST("/request", locationHandler.RequestLocation)
			loc.POST("/stop", locationHandler.StopLocation)
			loc.POST("/report", locationHandler.ReportLocation)
		}

		// Cars
		cars := protected.Group("/cars")
		{
			cars.GET("", carHandler.GetCars)
			cars.GET("/:id", carHandler.GetCar)
			cars.POST("/:id/charging/start", carHandler.StartCharging)
			cars.POST("/:id/charging/stop", carHandler.StopCharging)
			cars.PUT("/:id/charging/limit", carHandler.SetChargingLimit)
			cars.PUT("/:id/temperature", carHandler.SetTemperature)
			cars.PATCH("/:id/controls", carHandler.UpdateControls)
		}

		// Smart energy
		energy := protected.Group("/energy")
		{
			energy.GET("/score", energyHandler.GetScore)
			energy.GET("/tips", energyHandler.GetTips)
			energy.GET("/sessions", energyHandler.GetSessions)
		}

		// Credential cache
		creds := protected.Group("/credentials")
		{
			creds.POST("", credentialHandler.SaveCredential)
			creds.GET("/:account", credentialHandler.GetCredential)
			creds.PUT("/:account", credentialHandler.UpdateCredential)
			creds.DELETE("/:account", credentialHandler.DeleteCredential)
		}
		protected.GET("/biometrics/capability", credentialHandler.GetCapability)
	}
}
