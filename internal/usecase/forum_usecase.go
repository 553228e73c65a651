package usecase

import (
	"context"

	"launchpad/internal/domain/entity"
)

// CreatePostInput defines a new forum post.
type CreatePostInput struct {
	Title    string
	Content  string
	Category string
	Tags     []string
}

// ForumUsecase runs the community forum. Only authors may change or remove
// their posts and comments.
type ForumUsecase interface {
	ListPosts(ctx context.Context, category string) ([]*entity.ForumPost, error)
	GetPost(ctx context.Context, postID int64) (*entity.ForumPost, error)
	CreatePost(ctx context.Context, userID int64, input *CreatePostInput) (*entity.ForumPost, error)
	UpdatePost(ctx context.Context, userID, postID int64, update entity.ForumPostUpdate) (*entity.ForumPost, error)
	DeletePost(ctx context.Context, userID, postID int64) error

	ListComments(ctx context.Context, postID int64) ([]*entity.ForumComment, error)
	// CreateComment notifies the post author when someone else comments.
	CreateComment(ctx context.Context, userID, postID int64, content string) (*entity.ForumComment, error)
	UpdateComment(ctx context.Context, userID, commentID int64, content string) (*entity.ForumComment, error)
	DeleteComment(ctx context.Context, userID, commentID int64) error
}
