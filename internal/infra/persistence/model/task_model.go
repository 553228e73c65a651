package model

import "time"

// TaskModel mirrors the 'tasks' table.
type TaskModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	StartupID   int64  `gorm:"index;not null"`
	Title       string `gorm:"type:varchar(200);not null"`
	Description string `gorm:"type:text"`
	Status      string `gorm:"type:varchar(20);index;not null"`
	Priority    string `gorm:"type:varchar(20);not null"`
	Category    string `gorm:"type:varchar(100)"`
	DueDate     *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (TaskModel) TableName() string {
	return "tasks"
}
