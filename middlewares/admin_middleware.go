package middlewares

import (
	"net/http"

	"ndis_connect/types"

	"cloud.google.com/go/logging"
	"github.com/gin-gonic/gin"
)

// Admin authorization middleware, must run after AuthMiddleware
func AdminAuthMiddleware(logger types.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(types.CONTEXT_USER_KEY); exists {
			decodedToken, ok := CurrentUser(c)
			if !ok {
				logger.Log(logging.Entry{
					Severity: logging.Error,
					Payload:  "Failed to cast the user to *auth.Token",
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unexpected error occurred"})
				return
			}

			// Check for the admin role within the token's claims
			if admin, ok := decodedToken.Claims["admin"].(bool); ok && admin {
				c.Next()
				return
			}
		}

		logger.Log(logging.Entry{
			Severity: logging.Error,
			Payload:  "You must be an admin to perform this action",
		})
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "You must be an admin to perform this action"})
	}
}
