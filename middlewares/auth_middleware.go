package middlewares

import (
	"context"
	"net/http"
	"strings"

	"ndis_connect/types"

	"cloud.google.com/go/logging"
	"firebase.google.com/go/auth"
	"github.com/gin-gonic/gin"
)

// TokenVerifier verifies Firebase ID tokens. *auth.Client satisfies it.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// Middleware to authenticate users with their Firebase ID token.
func AuthMiddleware(logger types.Logger, verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Extract the token from the Authorization header or cookie
		idToken := extractToken(c)
		if idToken == "" {
			logger.Log(logging.Entry{
				Severity: logging.Error,
				Payload:  "Unauthorized - No ID token provided",
			})

			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized - No ID token provided"})
			return
		}

		decodedToken, err := verifier.VerifyIDToken(c.Request.Context(), idToken)
		if err != nil {
			logger.Log(logging.Entry{
				Severity: logging.Error,
				Payload:  "Unauthorized - Invalid ID token: " + err.Error(),
			})

			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized - Invalid ID token"})
			return
		}

		c.Set(types.CONTEXT_USER_KEY, decodedToken)
		c.Next()
	}
}

// CurrentUser returns the token stored by AuthMiddleware.
func CurrentUser(c *gin.Context) (*auth.Token, bool) {
	user, exists := c.Get(types.CONTEXT_USER_KEY)
	if !exists {
		return nil, false
	}
	token, ok := user.(*auth.Token)
	return token, ok && token != nil
}

// Extracts token from the Authorization header or the __session cookie.
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	if cookie, err := c.Cookie("__session"); err == nil {
		return cookie
	}
	return ""
}
