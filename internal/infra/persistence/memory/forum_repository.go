package memory

import (
	"context"
	"slices"

	"launchpad/internal/domain/entity"
	"launchpad/internal/domain/repository"
)

type forumRepository struct {
	store *Store
}

// NewForumRepository creates a memory-backed forum repository.
func NewForumRepository(store *Store) repository.ForumRepository {
	return &forumRepository{store: store}
}

// commentCount is called with mu held.
func (r *forumRepository) commentCount(postID int64) int {
	return len(r.store.comments.filter(func(c *entity.ForumComment) bool { return c.PostID == postID }))
}

func (r *forumRepository) CreatePost(_ context.Context, post *entity.ForumPost) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := r.store.now()
	post.ID = r.store.posts.nextID()
	post.CommentCount = 0
	post.CreatedAt = now
	post.UpdatedAt = now
	r.store.posts.put(post.ID, post)
	return nil
}

func (r *forumRepository) FindPostByID(_ context.Context, id int64) (*entity.ForumPost, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.posts.get(id)
	if !ok {
		return nil, repository.ErrPostNotFound
	}
	p.CommentCount = r.commentCount(id)
	return p, nil
}

func (r *forumRepository) FindPosts(_ context.Context, category string) ([]*entity.ForumPost, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	posts := r.store.posts.filter(func(p *entity.ForumPost) bool { return category == "" || p.Category == category })
	for _, p := range posts {
		p.CommentCount = r.commentCount(p.ID)
	}
	slices.Reverse(posts)
	return posts, nil
}

func (r *forumRepository) UpdatePost(_ context.Context, id int64, update entity.ForumPostUpdate) (*entity.ForumPost, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p, ok := r.store.posts.get(id)
	if !ok {
		return nil, repository.ErrPostNotFound
	}

	update.Apply(p)
	p.UpdatedAt = r.store.now()
	r.store.posts.put(id, p)
	p.CommentCount = r.commentCount(id)
	return p, nil
}

func (r *forumRepository) DeletePost(_ context.Context, id int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if !r.store.posts.remove(id) {
		return false, nil
	}
	r.store.comments.removeWhere(func(c *entity.ForumComment) bool { return c.PostID == id })
	return true, nil
}

func (r *forumRepository) CreateComment(_ context.Context, comment *entity.ForumComment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.posts.get(comment.PostID); !ok {
		return repository.ErrPostNotFound
	}

	now := r.store.now()
	comment.ID = r.store.comments.nextID()
	comment.CreatedAt = now
	comment.UpdatedAt = now
	r.store.comments.put(comment.ID, comment)
	return nil
}

func (r *forumRepository) FindCommentByID(_ context.Context, id int64) (*entity.ForumComment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	c, ok := r.store.comments.get(id)
	if !ok {
		return nil, repository.ErrCommentNotFound
	}
	return c, nil
}

func (r *forumRepository) FindCommentsByPostID(_ context.Context, postID int64) ([]*entity.ForumComment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.store.comments.filter(func(c *entity.ForumComment) bool { return c.PostID == postID }), nil
}

func (r *forumRepository) UpdateComment(_ context.Context, id int64, content string) (*entity.ForumComment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	c, ok := r.store.comments.get(id)
	if !ok {
		return nil, repository.ErrCommentNotFound
	}

	c.Content = content
	c.UpdatedAt = r.store.now()
	r.store.comments.put(id, c)
	return c, nil
}

func (r *forumRepository) DeleteComment(_ context.Context, id int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return r.store.comments.remove(id), nil
}
