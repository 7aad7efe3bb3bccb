package handlers

import (
	"context"
	"errors"
	"net/http"

	"ndis_connect/analytics"
	"ndis_connect/middlewares"
	"ndis_connect/tools"
	"ndis_connect/types"

	"github.com/gin-gonic/gin"
)

// EventLogger records analytics events. *analytics.Client satisfies it.
type EventLogger interface {
	LogEvent(ctx context.Context, e analytics.Event) error
}

type analyticsEventRequest struct {
	Name   string                 `json:"name" binding:"required"`
	Params map[string]interface{} `json:"params"`
}

// LogAnalyticsEventHandler records an event on behalf of the caller
func LogAnalyticsEventHandler(logger types.Logger, events EventLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middlewares.CurrentUser(c)
		if !ok {
			tools.LogErrorWithStatus(logger, c, http.StatusUnauthorized, errors.New("no authenticated user"))
			return
		}

		var req analyticsEventRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			tools.LogError(logger, c, err)
			return
		}

		err := events.LogEvent(c.Request.Context(), analytics.Event{
			Name:   req.Name,
			Params: req.Params,
			UserID: user.UID,
		})
		if err != nil {
			tools.LogError(logger, c, err)
			return
		}

		c.JSON(http.StatusAccepted, gin.H{
			"status": "accepted",
		})
	}
}
