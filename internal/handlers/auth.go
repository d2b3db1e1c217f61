package handlers

import (
	"errors"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"appointment-booking-server/internal/config"
	"appointment-booking-server/internal/logger"
	"appointment-booking-server/internal/middleware"
	"appointment-booking-server/internal/models"
	"appointment-booking-server/internal/utils"
)

// AuthHandler handles admin authentication requests.
type AuthHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
	log zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{DB: db, Cfg: cfg, log: logger.Get()}
}

// LoginRequest represents the admin login form.
type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// ShowLogin handles GET /admin: an already-authenticated admin is sent
// straight to the dashboard, everyone else gets the login page.
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	if _, ok := middleware.ResolveSession(c, h.DB, h.Cfg); ok {
		c.Redirect(http.StatusFound, "/admin/dashboard")
		return
	}
	c.File(filepath.Join(h.Cfg.StaticDir, "admin_login.html"))
}

// Login handles the admin login form. Unknown usernames and wrong passwords
// produce the same response body.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := utils.BindForm(c, &req); err != nil {
		c.String(http.StatusUnauthorized, "Invalid credentials")
		return
	}

	var admin models.Admin
	if err := h.DB.Where("username = ?", req.Username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.String(http.StatusUnauthorized, "Invalid credentials")
		} else {
			h.log.Error().Err(err).Msg("login error")
			c.String(http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	if !admin.CheckPassword(req.Password) {
		c.String(http.StatusUnauthorized, "Invalid credentials")
		return
	}

	ttl := time.Duration(h.Cfg.SessionTTLHours) * time.Hour
	session, err := models.CreateSession(h.DB, admin.ID, ttl)
	if err != nil {
		h.log.Error().Err(err).Msg("error creating session")
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.SetCookie(
		utils.SessionCookieName,
		utils.SignToken(session.Token, h.Cfg.SessionSecret),
		h.Cfg.SessionTTLHours*60*60,        // Max age in seconds
		"/",                                // Path
		"",                                 // Domain (empty means current domain)
		h.Cfg.Environment != "development", // Secure (true in prod, false in dev)
		true,                               // HTTP only
	)

	c.Redirect(http.StatusFound, "/admin/dashboard")
}

// Dashboard serves the static dashboard page. Route-level middleware has
// already checked the session.
func (h *AuthHandler) Dashboard(c *gin.Context) {
	c.File(filepath.Join(h.Cfg.StaticDir, "admin_dashboard.html"))
}

// Logout destroys the session unconditionally and sends the browser home.
func (h *AuthHandler) Logout(c *gin.Context) {
	if value, err := c.Cookie(utils.SessionCookieName); err == nil {
		if token, ok := utils.VerifyToken(value, h.Cfg.SessionSecret); ok {
			if err := models.DestroySession(h.DB, token); err != nil {
				h.log.Error().Err(err).Msg("error destroying session")
			}
		}
	}

	// Clear the session cookie
	c.SetCookie(
		utils.SessionCookieName,
		"",
		-1,
		"/",
		"",
		h.Cfg.Environment != "development",
		true,
	)

	c.Redirect(http.StatusFound, "/")
}
