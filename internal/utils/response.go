package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response helpers producing the admin API's wire shapes: successes are
// {"message": ...}, errors are {"error": ...}.

// JSONMessage sends a 200 success response.
func JSONMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// JSONError sends an error response with the given status code.
func JSONError(c *gin.Context, statusCode int, errorMessage string) {
	c.JSON(statusCode, gin.H{"error": errorMessage})
}

// BadRequest sends a 400 Bad Request error response.
func BadRequest(c *gin.Context, errorMessage string) {
	JSONError(c, http.StatusBadRequest, errorMessage)
}

// Unauthorized sends a 401 Unauthorized error response.
func Unauthorized(c *gin.Context) {
	JSONError(c, http.StatusUnauthorized, "Unauthorized")
}

// NotFound sends a 404 Not Found error response.
func NotFound(c *gin.Context, errorMessage string) {
	JSONError(c, http.StatusNotFound, errorMessage)
}

// InternalServerError sends a 500 Internal Server Error response.
func InternalServerError(c *gin.Context) {
	JSONError(c, http.StatusInternalServerError, "Internal Server Error")
}
