package handlers

import (
	"net/http"
	"time"

	"ndis_connect/tasks"
	"ndis_connect/tools"
	"ndis_connect/types"

	"github.com/gin-gonic/gin"
)

type notificationRequest struct {
	UserId string            `json:"userId" binding:"required"`
	Title  string            `json:"title" binding:"required"`
	Body   string            `json:"body"`
	Data   map[string]string `json:"data"`
}

// SendNotificationHandler queues a push notification for a user
func SendNotificationHandler(logger types.Logger, creator tasks.TaskCreator, queue tasks.Queue) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req notificationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			tools.LogError(logger, c, err)
			return
		}

		id, err := tools.GenerateID()
		if err != nil {
			tools.LogErrorWithStatus(logger, c, http.StatusInternalServerError, err)
			return
		}

		message := types.NotificationMessage{
			Id:        id,
			UserId:    req.UserId,
			Title:     req.Title,
			Body:      req.Body,
			Data:      req.Data,
			CreatedAt: time.Now().UTC().Format(time.RFC3339),
		}

		task, err := tasks.CreateNotificationTask(c.Request.Context(), creator, logger, queue, message)
		if err != nil {
			tools.LogErrorWithStatus(logger, c, http.StatusBadGateway, err)
			return
		}

		c.JSON(http.StatusAccepted, gin.H{
			"id":   id,
			"task": task.GetName(),
		})
	}
}
