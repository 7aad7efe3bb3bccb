package types

// NotificationMessage is the push payload delivered to a user's device.
type NotificationMessage struct {
	Id        string            `json:"id"`
	UserId    string            `json:"userId"`
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	Data      map[string]string `json:"data,omitempty"`
	CreatedAt string            `json:"createdAt"`
}
