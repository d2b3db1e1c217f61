package main

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"appointment-booking-server/internal/config"
	"appointment-booking-server/internal/logger"
	"appointment-booking-server/internal/models"
	"appointment-booking-server/internal/routes"
)

// loadEnv populates the process environment from a .env file, if one exists.
// It must run before the logger or config read any variables.
func loadEnv() bool {
	return godotenv.Load() == nil
}

func main() {
	// Load environment variables before anything reads them; a missing .env
	// just means the process environment is used as-is.
	envLoaded := loadEnv()

	log := logger.Init(logger.Options{
		Level:  os.Getenv("LOG_LEVEL"),
		Pretty: os.Getenv("APP_ENV") != "production",
	})
	if !envLoaded {
		log.Debug().Msg("no .env file found, using process environment")
	}

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error loading config")
	}

	// Initialize database connection and run migrations before accepting
	// traffic; a failed migration is a failed startup.
	db, err := models.InitDB(models.DatabaseConfig{DSN: cfg.Database.DSN})
	if err != nil {
		log.Fatal().Err(err).Msg("error initializing database")
	}

	// Initialize Gin router
	router := gin.Default()

	// Configure CORS
	corsConfig := cors.DefaultConfig()
	if cfg.Origin == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = []string{cfg.Origin}
		corsConfig.AllowCredentials = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	router.Use(cors.New(corsConfig))

	// Set up routes - passing DB and config to let routes.go create the handlers
	routes.SetupRoutes(router, db, cfg)

	// Start server
	log.Info().Str("port", cfg.Port).Msg("server running")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
