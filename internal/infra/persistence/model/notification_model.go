package model

import "time"

// NotificationModel mirrors the 'notifications' table.
type NotificationModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	UserID      int64  `gorm:"index:idx_notifications_user_read;not null"`
	Type        string `gorm:"type:varchar(50);not null"`
	Title       string `gorm:"type:varchar(200);not null"`
	Message     string `gorm:"type:text"`
	Read        bool   `gorm:"index:idx_notifications_user_read;not null;default:false"`
	RelatedID   *int64
	RelatedType *string `gorm:"type:varchar(50)"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
