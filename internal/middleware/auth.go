package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"appointment-booking-server/internal/config"
	"appointment-booking-server/internal/models"
	"appointment-booking-server/internal/utils"
)

// ResolveSession extracts the session cookie from the request, verifies its
// signature and resolves it to an unexpired session row. Any failure along
// the way means the request is unauthenticated.
func ResolveSession(c *gin.Context, db *gorm.DB, cfg *config.Config) (*models.Session, bool) {
	value, err := c.Cookie(utils.SessionCookieName)
	if err != nil || value == "" {
		return nil, false
	}
	token, ok := utils.VerifyToken(value, cfg.SessionSecret)
	if !ok {
		return nil, false
	}
	session, err := models.LookupSession(db, token)
	if err != nil {
		return nil, false
	}
	return session, true
}

// RequireAdminAPI guards the JSON API: an unauthenticated request is
// rejected with a 401 JSON body.
func RequireAdminAPI(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := ResolveSession(c, db, cfg)
		if !ok {
			utils.Unauthorized(c)
			c.Abort()
			return
		}

		// Set admin information in context for downstream handlers
		c.Set("adminID", session.AdminID)

		c.Next()
	}
}

// RequireAdminPage guards the HTML dashboard: an unauthenticated request is
// redirected to the login page.
func RequireAdminPage(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := ResolveSession(c, db, cfg)
		if !ok {
			c.Redirect(http.StatusFound, "/admin")
			c.Abort()
			return
		}

		c.Set("adminID", session.AdminID)

		c.Next()
	}
}

// Helper function to get the authenticated admin id from context
func GetAdminIDFromContext(c *gin.Context) (uint, bool) {
	adminID, exists := c.Get("adminID")
	if !exists {
		return 0, false
	}
	id, ok := adminID.(uint)
	return id, ok
}
