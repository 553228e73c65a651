package model

import (
	"time"

	"gorm.io/datatypes"
)

// ResourceModel mirrors the 'resources' table.
type ResourceModel struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	Title       string  `gorm:"type:varchar(200);not null"`
	Description string  `gorm:"type:text"`
	URL         string  `gorm:"type:varchar(500)"`
	Category    string  `gorm:"type:varchar(100);index"`
	Type        string  `gorm:"type:varchar(50)"`
	Industry    *string `gorm:"type:varchar(100);index"`
	Tags        datatypes.JSON
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ResourceModel) TableName() string {
	return "resources"
}
