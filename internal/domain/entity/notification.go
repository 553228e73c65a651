package entity

import "time"

// Notification types.
const (
	NotificationComment  = "comment"
	NotificationProgress = "progress"
	NotificationSystem   = "system"
)

// Related entity types referenced by notifications.
const (
	RelatedForumPost = "forum_post"
	RelatedStartup   = "startup"
)

// Notification is an in-app message for a single user.
type Notification struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"` // Recipient.
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	Read        bool      `json:"read"`
	RelatedID   *int64    `json:"relatedId"`   // Entity the notification points at, if any.
	RelatedType *string   `json:"relatedType"` // Kind of RelatedID.
	CreatedAt   time.Time `json:"createdAt"`
}
