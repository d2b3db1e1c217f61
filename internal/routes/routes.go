package routes

import (
	"path/filepath"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"appointment-booking-server/internal/config"
	"appointment-booking-server/internal/handlers"
	"appointment-booking-server/internal/middleware"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db, cfg)
	appointmentHandler := handlers.NewAppointmentHandler(db)

	// Public pages and booking form (no authentication required)
	router.GET("/", func(c *gin.Context) {
		c.File(filepath.Join(cfg.StaticDir, "home.html"))
	})
	router.GET("/success.html", func(c *gin.Context) {
		c.File(filepath.Join(cfg.StaticDir, "success.html"))
	})
	router.POST("/submit-appointment", appointmentHandler.Submit)

	// Admin pages
	router.GET("/admin", authHandler.ShowLogin)
	router.POST("/admin/login", authHandler.Login)
	router.GET("/admin/dashboard", middleware.RequireAdminPage(db, cfg), authHandler.Dashboard)
	router.GET("/admin/logout", authHandler.Logout)

	// Admin JSON API
	api := router.Group("/api")
	api.Use(middleware.RequireAdminAPI(db, cfg))
	{
		api.GET("/appointments", appointmentHandler.List)
		api.POST("/appointments/reset-all", appointmentHandler.ResetAll)
		api.DELETE("/appointments/:id", appointmentHandler.Delete)
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
