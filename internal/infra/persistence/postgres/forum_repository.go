package postgres

import (
	"context"

	"launchpad/internal/domain/entity"
	"launchpad/internal/domain/repository"
	"launchpad/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const postColumns = "forum_posts.*, (SELECT COUNT(*) FROM forum_comments c WHERE c.post_id = forum_posts.id) AS comment_count"

type forumRepository struct {
	db *gorm.DB
}

// NewForumRepository creates a GORM-backed forum repository.
func NewForumRepository(db *gorm.DB) repository.ForumRepository {
	return &forumRepository{db: db}
}

func (repo *forumRepository) CreatePost(ctx context.Context, post *entity.ForumPost) error {
	m, err := fromPostDomain(post)
	if err != nil {
		return err
	}
	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		return errors.Wrap(err, "failed to create post")
	}

	post.ID = m.ID
	post.CommentCount = 0
	post.CreatedAt = m.CreatedAt
	post.UpdatedAt = m.UpdatedAt
	return nil
}

func (repo *forumRepository) FindPostByID(ctx context.Context, id int64) (*entity.ForumPost, error) {
	var m model.ForumPostModel
	if err := repo.db.WithContext(ctx).Select(postColumns).Where("forum_posts.id = ?", id).First(&m).Error; err != nil {
		return nil, notFoundOr(err, repository.ErrPostNotFound, "failed to find post")
	}
	return toPostDomain(&m)
}

func (repo *forumRepository) FindPosts(ctx context.Context, category string) ([]*entity.ForumPost, error) {
	q := repo.db.WithContext(ctx).Select(postColumns)
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var rows []*model.ForumPostModel
	if err := q.Order("forum_posts.id DESC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	out := make([]*entity.ForumPost, 0, len(rows))
	for _, m := range rows {
		p, err := toPostDomain(m)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (repo *forumRepository) UpdatePost(ctx context.Context, id int64, update entity.ForumPostUpdate) (*entity.ForumPost, error) {
	changes := map[string]any{"updated_at": gorm.Expr("NOW()")}
	if update.Title != nil {
		changes["title"] = *update.Title
	}
	if update.Content != nil {
		changes["content"] = *update.Content
	}
	if update.Category != nil {
		changes["category"] = *update.Category
	}
	if update.Tags != nil {
		tags, err := marshalJSON(update.Tags)
		if err != nil {
			return nil, err
		}
		changes["tags"] = datatypes.JSON(tags)
	}

	res := repo.db.WithContext(ctx).Model(&model.ForumPostModel{}).Where("id = ?", id).Updates(changes)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "failed to update post")
	}
	if res.RowsAffected == 0 {
		return nil, repository.ErrPostNotFound
	}

	return repo.FindPostByID(ctx, id)
}

func (repo *forumRepository) DeletePost(ctx context.Context, id int64) (bool, error) {
	removed := false
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.ForumCommentModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to delete comments")
		}
		res := tx.Delete(&model.ForumPostModel{}, id)
		if res.Error != nil {
			return errors.Wrap(res.Error, "failed to delete post")
		}
		removed = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}

func (repo *forumRepository) CreateComment(ctx context.Context, comment *entity.ForumComment) error {
	var exists int64
	if err := repo.db.WithContext(ctx).Model(&model.ForumPostModel{}).Where("id = ?", comment.PostID).Count(&exists).Error; err != nil {
		return errors.Wrap(err, "failed to check post")
	}
	if exists == 0 {
		return repository.ErrPostNotFound
	}

	m := &model.ForumCommentModel{
		PostID:  comment.PostID,
		UserID:  comment.UserID,
		Content: comment.Content,
	}
	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		return errors.Wrap(err, "failed to create comment")
	}

	*comment = *toCommentDomain(m)
	return nil
}

func (repo *forumRepository) FindCommentByID(ctx context.Context, id int64) (*entity.ForumComment, error) {
	var m model.ForumCommentModel
	if err := repo.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, notFoundOr(err, repository.ErrCommentNotFound, "failed to find comment")
	}
	return toCommentDomain(&m), nil
}

func (repo *forumRepository) FindCommentsByPostID(ctx context.Context, postID int64) ([]*entity.ForumComment, error) {
	var rows []*model.ForumCommentModel
	if err := repo.db.WithContext(ctx).Where("post_id = ?", postID).Order("id").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	out := make([]*entity.ForumComment, 0, len(rows))
	for _, m := range rows {
		out = append(out, toCommentDomain(m))
	}
	return out, nil
}

func (repo *forumRepository) UpdateComment(ctx context.Context, id int64, content string) (*entity.ForumComment, error) {
	res := repo.db.WithContext(ctx).Model(&model.ForumCommentModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"content": content, "updated_at": gorm.Expr("NOW()")})
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "failed to update comment")
	}
	if res.RowsAffected == 0 {
		return nil, repository.ErrCommentNotFound
	}
	return repo.FindCommentByID(ctx, id)
}

func (repo *forumRepository) DeleteComment(ctx context.Context, id int64) (bool, error) {
	res := repo.db.WithContext(ctx).Delete(&model.ForumCommentModel{}, id)
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "failed to delete comment")
	}
	return res.RowsAffected > 0, nil
}
