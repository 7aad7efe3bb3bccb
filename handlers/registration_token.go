package handlers

import (
	"context"
	"errors"
	"net/http"

	"ndis_connect/middlewares"
	"ndis_connect/tools"
	"ndis_connect/types"

	"github.com/gin-gonic/gin"
)

// TokenRegistry stores FCM registration tokens per user.
type TokenRegistry interface {
	SaveRegistrationToken(ctx context.Context, token types.RegistrationToken) error
	DeleteRegistrationToken(ctx context.Context, userID string) error
}

type registrationTokenRequest struct {
	Token    string `json:"token" form:"token" binding:"required"`
	Platform string `json:"platform" form:"platform"`
}

// SetMessagingRegistrationToken stores the caller's messaging registration token
func SetMessagingRegistrationToken(logger types.Logger, registry TokenRegistry) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middlewares.CurrentUser(c)
		if !ok {
			tools.LogErrorWithStatus(logger, c, http.StatusUnauthorized, errors.New("no authenticated user"))
			return
		}

		var req registrationTokenRequest
		if err := c.ShouldBind(&req); err != nil {
			tools.LogError(logger, c, err)
			return
		}
		if req.Platform == "" {
			req.Platform = "web"
		}

		err := registry.SaveRegistrationToken(c.Request.Context(), types.RegistrationToken{
			UserId:   user.UID,
			Token:    req.Token,
			Platform: req.Platform,
		})
		if err != nil {
			tools.LogErrorWithStatus(logger, c, http.StatusInternalServerError, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	}
}

// DeleteMessagingRegistrationToken removes the caller's registration token
func DeleteMessagingRegistrationToken(logger types.Logger, registry TokenRegistry) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middlewares.CurrentUser(c)
		if !ok {
			tools.LogErrorWithStatus(logger, c, http.StatusUnauthorized, errors.New("no authenticated user"))
			return
		}

		if err := registry.DeleteRegistrationToken(c.Request.Context(), user.UID); err != nil {
			tools.LogErrorWithStatus(logger, c, http.StatusInternalServerError, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	}
}
