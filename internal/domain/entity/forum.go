package entity

import "time"

// ForumPost is a community discussion thread.
type ForumPost struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"userId"` // Author.
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Category     string    `json:"category"`
	Tags         []string  `json:"tags"`
	CommentCount int       `json:"commentCount"` // Filled on reads, not stored.
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ForumPostUpdate carries a partial update of a post. Nil fields are left untouched.
type ForumPostUpdate struct {
	Title    *string
	Content  *string
	Category *string
	Tags     []string
}

// Apply copies every set field onto p.
func (u ForumPostUpdate) Apply(p *ForumPost) {
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Content != nil {
		p.Content = *u.Content
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.Tags != nil {
		p.Tags = u.Tags
	}
}

// ForumComment is a reply to a post.
type ForumComment struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"postId"`
	UserID    int64     `json:"userId"` // Author.
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
