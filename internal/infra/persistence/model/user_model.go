// Package model holds the GORM persistence models. They mirror the tables and
// are mapped to domain entities by the postgres repositories.
package model

import "time"

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	Username      string `gorm:"type:varchar(50);uniqueIndex;not null"`
	Email         string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash  string `gorm:"type:varchar(255)"`
	GoogleSubject string `gorm:"type:varchar(255);index"`
	FullName      string `gorm:"type:varchar(100)"`
	Bio           string `gorm:"type:text"`
	Location      string `gorm:"type:varchar(100)"`
	Website       string `gorm:"type:varchar(500)"`
	AvatarURL     string `gorm:"type:varchar(500)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
