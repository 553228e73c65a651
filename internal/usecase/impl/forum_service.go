package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "launchpad/internal/delivery/context"
	"launchpad/internal/domain/constants"
	"launchpad/internal/domain/entity"
	domainerrors "launchpad/internal/domain/errors"
	"launchpad/internal/domain/repository"
	"launchpad/internal/domain/service"
	"launchpad/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const commentPreviewLength = 140

// forumService implements the ForumUsecase interface.
type forumService struct {
	forum    repository.ForumRepository
	users    repository.UserRepository
	notifier *notifier
	events   *eventBus
	logger   *slog.Logger
}

// ForumServiceParams holds dependencies for ForumService, injected by Fx.
type ForumServiceParams struct {
	fx.In

	Forum         repository.ForumRepository
	Users         repository.UserRepository
	Notifications repository.NotificationRepository
	Publisher     service.EventPublisher
	Push          service.NotificationService `optional:"true"`
	Logger        *slog.Logger
}

// NewForumService is the constructor for forumService.
func NewForumService(params ForumServiceParams) usecase.ForumUsecase {
	return &forumService{
		forum:    params.Forum,
		users:    params.Users,
		notifier: &notifier{notifications: params.Notifications, push: params.Push, logger: params.Logger},
		events:   &eventBus{publisher: params.Publisher, logger: params.Logger, now: time.Now},
		logger:   params.Logger,
	}
}

func (srv *forumService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *forumService) ListPosts(ctx context.Context, category string) ([]*entity.ForumPost, error) {
	posts, err := srv.forum.FindPosts(ctx, category)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	return posts, nil
}

func (srv *forumService) GetPost(ctx context.Context, postID int64) (*entity.ForumPost, error) {
	post, err := srv.forum.FindPostByID(ctx, postID)
	if errors.Is(err, repository.ErrPostNotFound) {
		return nil, domainerrors.ErrPostNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find post")
	}

	return post, nil
}

func (srv *forumService) CreatePost(ctx context.Context, userID int64, input *usecase.CreatePostInput) (*entity.ForumPost, error) {
	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	post := &entity.ForumPost{
		UserID:   userID,
		Title:    input.Title,
		Content:  input.Content,
		Category: input.Category,
		Tags:     tags,
	}
	if err := srv.forum.CreatePost(ctx, post); err != nil {
		return nil, errors.Wrap(err, "failed to create post")
	}

	return post, nil
}

// ownPost loads a post and checks that userID wrote it.
func (srv *forumService) ownPost(ctx context.Context, userID, postID int64) (*entity.ForumPost, error) {
	post, err := srv.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.UserID != userID {
		return nil, domainerrors.ErrNotAuthor
	}

	return post, nil
}

func (srv *forumService) UpdatePost(ctx context.Context, userID, postID int64, update entity.ForumPostUpdate) (*entity.ForumPost, error) {
	if _, err := srv.ownPost(ctx, userID, postID); err != nil {
		return nil, err
	}

	post, err := srv.forum.UpdatePost(ctx, postID, update)
	if errors.Is(err, repository.ErrPostNotFound) {
		return nil, domainerrors.ErrPostNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to update post")
	}

	return post, nil
}

func (srv *forumService) DeletePost(ctx context.Context, userID, postID int64) error {
	if _, err := srv.ownPost(ctx, userID, postID); err != nil {
		return err
	}

	removed, err := srv.forum.DeletePost(ctx, postID)
	if err != nil {
		return errors.Wrap(err, "failed to delete post")
	}
	if !removed {
		return domainerrors.ErrPostNotFound
	}

	return nil
}

func (srv *forumService) ListComments(ctx context.Context, postID int64) ([]*entity.ForumComment, error) {
	if _, err := srv.GetPost(ctx, postID); err != nil {
		return nil, err
	}

	comments, err := srv.forum.FindCommentsByPostID(ctx, postID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	return comments, nil
}

func (srv *forumService) CreateComment(ctx context.Context, userID, postID int64, content string) (*entity.ForumComment, error) {
	post, err := srv.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment := &entity.ForumComment{PostID: postID, UserID: userID, Content: content}
	if err := srv.forum.CreateComment(ctx, comment); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to create comment")
	}

	srv.events.publish(ctx, &service.DomainEvent{
		Type:       constants.EventCommentCreated,
		UserID:     userID,
		EntityID:   comment.ID,
		Attributes: map[string]string{"post_id": formatID(postID)},
	})

	if post.UserID != userID {
		if err := srv.notifier.notify(ctx, srv.commentNotification(ctx, userID, post, content)); err != nil {
			srv.log(ctx).Warn("Failed to notify post author",
				slog.Int64("post_id", post.ID),
				slog.Int64("comment_id", comment.ID),
				slog.Any("error", err),
			)
		}
	}

	return comment, nil
}

func (srv *forumService) commentNotification(ctx context.Context, commenterID int64, post *entity.ForumPost, content string) *entity.Notification {
	commenter := "Someone"
	if user, err := srv.users.FindByID(ctx, commenterID); err == nil {
		commenter = user.Username
	} else {
		srv.log(ctx).Debug("Commenter lookup failed", slog.Int64("userID", commenterID), slog.Any("error", err))
	}

	relatedID := post.ID
	relatedType := entity.RelatedForumPost

	return &entity.Notification{
		UserID:      post.UserID,
		Type:        entity.NotificationComment,
		Title:       commenter + " commented on \"" + post.Title + "\"",
		Message:     preview(content, commentPreviewLength),
		RelatedID:   &relatedID,
		RelatedType: &relatedType,
	}
}

// ownComment loads a comment and checks that userID wrote it.
func (srv *forumService) ownComment(ctx context.Context, userID, commentID int64) (*entity.ForumComment, error) {
	comment, err := srv.forum.FindCommentByID(ctx, commentID)
	if errors.Is(err, repository.ErrCommentNotFound) {
		return nil, domainerrors.ErrCommentNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find comment")
	}
	if comment.UserID != userID {
		return nil, domainerrors.ErrNotAuthor
	}

	return comment, nil
}

func (srv *forumService) UpdateComment(ctx context.Context, userID, commentID int64, content string) (*entity.ForumComment, error) {
	if _, err := srv.ownComment(ctx, userID, commentID); err != nil {
		return nil, err
	}

	comment, err := srv.forum.UpdateComment(ctx, commentID, content)
	if errors.Is(err, repository.ErrCommentNotFound) {
		return nil, domainerrors.ErrCommentNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to update comment")
	}

	return comment, nil
}

func (srv *forumService) DeleteComment(ctx context.Context, userID, commentID int64) error {
	if _, err := srv.ownComment(ctx, userID, commentID); err != nil {
		return err
	}

	removed, err := srv.forum.DeleteComment(ctx, commentID)
	if err != nil {
		return errors.Wrap(err, "failed to delete comment")
	}
	if !removed {
		return domainerrors.ErrCommentNotFound
	}

	return nil
}

// preview shortens s to at most n runes.
func preview(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}

	return string(runes[:n-1]) + "…"
}
