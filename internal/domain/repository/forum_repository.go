package repository

import (
	"context"
	"errors"

	"launchpad/internal/domain/entity"
)

// Domain-specific errors for forum persistence.
var (
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
)

// ForumRepository persists posts and their comments.
type ForumRepository interface {
	CreatePost(ctx context.Context, post *entity.ForumPost) error
	FindPostByID(ctx context.Context, id int64) (*entity.ForumPost, error)

	// FindPosts lists posts newest first. An empty category matches every post.
	FindPosts(ctx context.Context, category string) ([]*entity.ForumPost, error)

	UpdatePost(ctx context.Context, id int64, update entity.ForumPostUpdate) (*entity.ForumPost, error)

	// DeletePost removes the post and its comments, reporting whether the post existed.
	DeletePost(ctx context.Context, id int64) (bool, error)

	CreateComment(ctx context.Context, comment *entity.ForumComment) error
	FindCommentByID(ctx context.Context, id int64) (*entity.ForumComment, error)

	// FindCommentsByPostID lists a post's comments oldest first.
	FindCommentsByPostID(ctx context.Context, postID int64) ([]*entity.ForumComment, error)

	UpdateComment(ctx context.Context, id int64, content string) (*entity.ForumComment, error)
	DeleteComment(ctx context.Context, id int64) (bool, error)
}
