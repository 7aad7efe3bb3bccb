package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"ndis_connect/types"

	"cloud.google.com/go/logging"
	"firebase.google.com/go/messaging"
)

// ErrNoRegistrationToken is returned when the user has not registered a device.
var ErrNoRegistrationToken = errors.New("registration token is empty or invalid")

// MessageSender sends FCM messages. *messaging.Client satisfies it.
type MessageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// TokenStore looks up a user's FCM registration token, "" when none exists.
type TokenStore interface {
	RegistrationToken(ctx context.Context, userID string) (string, error)
}

// SendNotificationToClient delivers data to the device registered by data.UserId
// and returns the FCM message id.
func SendNotificationToClient(ctx context.Context, client MessageSender, tokens TokenStore, logger types.Logger, data types.NotificationMessage) (string, error) {
	tokenStr, err := tokens.RegistrationToken(ctx, data.UserId)
	if err != nil {
		logger.Log(logging.Entry{
			Severity: logging.Error,
			Payload:  "Error getting registration token from firestore",
			Labels:   map[string]string{"error": err.Error(), "userId": data.UserId},
		})
		return "", err
	}

	if tokenStr == "" {
		logger.Log(logging.Entry{
			Severity: logging.Error,
			Payload:  "Error sending message to client",
			Labels:   map[string]string{"error": ErrNoRegistrationToken.Error(), "userId": data.UserId},
		})
		return "", ErrNoRegistrationToken
	}

	// Convert the data struct to a JSON string
	dataJson, err := json.Marshal(data)
	if err != nil {
		logger.Log(logging.Entry{
			Severity: logging.Error,
			Payload:  "Error converting data to JSON",
			Labels:   map[string]string{"error": err.Error()},
		})
		return "", fmt.Errorf("error converting data to JSON: %w", err)
	}

	message := &messaging.Message{
		Data:  map[string]string{"data": string(dataJson)},
		Token: tokenStr,
	}
	if data.Title != "" || data.Body != "" {
		message.Notification = &messaging.Notification{
			Title: data.Title,
			Body:  data.Body,
		}
	}

	messageId, err := client.Send(ctx, message)
	if err != nil {
		logger.Log(logging.Entry{
			Severity: logging.Error,
			Payload:  "Error sending message to client",
			Labels:   map[string]string{"error": err.Error(), "userId": data.UserId},
		})
		return "", fmt.Errorf("error sending message to client: %w", err)
	}

	logger.Log(logging.Entry{
		Severity: logging.Info,
		Payload:  "Notification sent to client",
		Labels:   map[string]string{"messageId": messageId, "userId": data.UserId},
	})

	return messageId, nil
}
