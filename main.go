package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"pet-care-server/config"
	"pet-care-server/database"
	"pet-care-server/jobs"
	"pet-care-server/middleware"
	"pet-care-server/repository"
	"pet-care-server/routes"
	"pet-care-server/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load configuration
	config.Load()

	// Initialize database
	if err := database.Initialize(); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}

	// Set Gin mode
	if config.AppConfig.Server.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Disable automatic redirects for trailing slashes
	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false

	// CORS: single configured frontend origin, cookies allowed
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.AppConfig.CORS.AllowedOrigin},
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Pet Care Server is running",
			"time":    time.Now().UTC(),
		})
	})

	// Wire repositories and services
	db := database.GetDB()
	customers := repository.NewCustomerRepository(db)
	providers := repository.NewProviderRepository(db)
	contacts := repository.NewContactRepository(db)
	bookings := repository.NewBookingRepository(db)

	sessionStore := repository.NewSessionStore(db)
	sessionTTL := time.Duration(config.AppConfig.Session.TTLHours) * time.Hour
	sessions := services.NewSessionService(sessionStore, sessionTTL)

	// API routes
	handler := routes.NewHandler(customers, providers, contacts, bookings, sessions)
	handler.Register(router, middleware.AuthRateLimitMiddleware())

	// Start background session cleanup
	cleanupJob := jobs.NewSessionCleanupJob(sessionStore, 30*time.Minute)
	cleanupJob.Start()
	defer cleanupJob.Stop()

	port := config.AppConfig.Server.Port

	log.Printf("Server starting on port %s", port)
	if err := router.Run("0.0.0.0:" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
