package model

import (
	"time"

	"gorm.io/datatypes"
)

// ForumPostModel mirrors the 'forum_posts' table.
type ForumPostModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	UserID    int64  `gorm:"index;not null"`
	Title     string `gorm:"type:varchar(200);not null"`
	Content   string `gorm:"type:text;not null"`
	Category  string `gorm:"type:varchar(100);index"`
	Tags      datatypes.JSON
	CreatedAt time.Time
	UpdatedAt time.Time

	// CommentCount is filled by a subquery on reads.
	CommentCount int `gorm:"->;-:migration"`
}

// TableName explicitly sets the table name for GORM.
func (ForumPostModel) TableName() string {
	return "forum_posts"
}

// ForumCommentModel mirrors the 'forum_comments' table.
type ForumCommentModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	PostID    int64  `gorm:"index;not null"`
	UserID    int64  `gorm:"index;not null"`
	Content   string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ForumCommentModel) TableName() string {
	return "forum_comments"
}
