package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"ndis_connect/types"

	taskspb "cloud.google.com/go/cloudtasks/apiv2/cloudtaskspb"
	"cloud.google.com/go/logging"
	"github.com/googleapis/gax-go/v2"
)

// TaskCreator creates Cloud Tasks. *cloudtasks.Client satisfies it.
type TaskCreator interface {
	CreateTask(ctx context.Context, req *taskspb.CreateTaskRequest, opts ...gax.CallOption) (*taskspb.Task, error)
}

// Queue identifies the Cloud Tasks queue and the service that handles its
// tasks. Tasks carry an OIDC token minted for ServiceAccountEmail with the
// service URL as audience.
type Queue struct {
	ProjectID           string
	LocationID          string
	QueueID             string
	ServiceURL          string
	ServiceAccountEmail string
}

func (q Queue) Path() string {
	return fmt.Sprintf("projects/%s/locations/%s/queues/%s", q.ProjectID, q.LocationID, q.QueueID)
}

// Audience is the audience of the OIDC tokens attached to the queue's tasks.
func (q Queue) Audience() string {
	return strings.TrimSuffix(q.ServiceURL, "/")
}

// CreateNotificationTask enqueues an HTTP task that delivers message through
// the notification task handler.
func CreateNotificationTask(ctx context.Context, client TaskCreator, logger types.Logger, queue Queue, message types.NotificationMessage) (*taskspb.Task, error) {
	payload, err := json.Marshal(message)
	if err != nil {
		logger.Log(logging.Entry{
			Severity: logging.Error,
			Payload:  "Error serializing NotificationMessage",
			Labels:   map[string]string{"error": err.Error()},
		})
		return nil, err
	}

	req := &taskspb.CreateTaskRequest{
		Parent: queue.Path(),
		Task: &taskspb.Task{
			MessageType: &taskspb.Task_HttpRequest{
				HttpRequest: &taskspb.HttpRequest{
					HttpMethod: taskspb.HttpMethod_POST,
					Url:        queue.Audience() + types.CLOUD_TASKS_HANDLER_PATH,
					Headers:    map[string]string{"Content-Type": "application/json"},
					Body:       payload,
					AuthorizationHeader: &taskspb.HttpRequest_OidcToken{
						OidcToken: &taskspb.OidcToken{
							ServiceAccountEmail: queue.ServiceAccountEmail,
							Audience:            queue.Audience(),
						},
					},
				},
			},
		},
	}

	createdTask, err := client.CreateTask(ctx, req)
	if err != nil {
		logger.Log(logging.Entry{
			Severity: logging.Error,
			Payload:  "Error creating notification task",
			Labels:   map[string]string{"error": err.Error(), "notificationId": message.Id},
		})
		return nil, err
	}

	return createdTask, nil
}
