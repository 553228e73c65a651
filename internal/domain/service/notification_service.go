package service

import (
	"context"
	"strconv"
)

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendToTopic pushes a message to every device subscribed to topic.
	SendToTopic(ctx context.Context, topic, title, body string, data map[string]string) error
}

// UserTopic is the push topic a user's devices subscribe to.
func UserTopic(userID int64) string {
	return "user-" + strconv.FormatInt(userID, 10)
}
