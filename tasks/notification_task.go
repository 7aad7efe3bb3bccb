package tasks

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"ndis_connect/notifications"
	"ndis_connect/tools"
	"ndis_connect/types"

	"github.com/gin-gonic/gin"
	"google.golang.org/api/idtoken"
)

const queueNameHeader = "X-CloudTasks-QueueName"

var (
	errForeignQueue    = errors.New("request did not come from the notification queue")
	errMissingOIDC     = errors.New("task request carries no OIDC token")
	errForeignIdentity = errors.New("task token was not issued to the queue's service account")
)

// TokenValidator checks Google-signed OIDC tokens. *idtoken.Validator
// satisfies it.
type TokenValidator interface {
	Validate(ctx context.Context, token string, audience string) (*idtoken.Payload, error)
}

// NotificationTaskHandler delivers a push notification queued by
// CreateNotificationTask. A user without a registered device is acknowledged
// so Cloud Tasks does not retry it; any other failure is returned as 500 and
// retried by the queue.
//
// Only requests carrying the queue's name header and an OIDC token for the
// queue's service account, issued for the service URL, are accepted.
func NotificationTaskHandler(logger types.Logger, queue Queue, validator TokenValidator, sender notifications.MessageSender, tokens notifications.TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader(queueNameHeader) != queue.QueueID {
			tools.LogErrorWithStatus(logger, c, http.StatusForbidden, errForeignQueue)
			return
		}

		token, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found || token == "" {
			tools.LogErrorWithStatus(logger, c, http.StatusUnauthorized, errMissingOIDC)
			return
		}

		payload, err := validator.Validate(c.Request.Context(), token, queue.Audience())
		if err != nil {
			tools.LogErrorWithStatus(logger, c, http.StatusUnauthorized, err)
			return
		}
		if email, _ := payload.Claims["email"].(string); email == "" || email != queue.ServiceAccountEmail {
			tools.LogErrorWithStatus(logger, c, http.StatusForbidden, errForeignIdentity)
			return
		}

		var message types.NotificationMessage
		if err := c.ShouldBindJSON(&message); err != nil {
			tools.LogError(logger, c, err)
			return
		}
		if message.UserId == "" {
			tools.LogError(logger, c, errors.New("notification has no user id"))
			return
		}

		messageId, err := notifications.SendNotificationToClient(c.Request.Context(), sender, tokens, logger, message)
		if errors.Is(err, notifications.ErrNoRegistrationToken) {
			c.JSON(http.StatusOK, gin.H{"status": "skipped"})
			return
		}
		if err != nil {
			tools.LogErrorWithStatus(logger, c, http.StatusInternalServerError, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "sent", "messageId": messageId})
	}
}
