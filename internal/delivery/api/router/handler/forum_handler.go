package handler

import (
	"net/http"

	"launchpad/internal/delivery/api/response"
	"launchpad/internal/domain/entity"
	"launchpad/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ForumHandler serves forum posts and comments. Reads are public.
type ForumHandler struct {
	uc usecase.ForumUsecase
}

// NewForumHandler is the constructor for ForumHandler.
func NewForumHandler(uc usecase.ForumUsecase) *ForumHandler {
	return &ForumHandler{uc: uc}
}

type createPostRequest struct {
	Title    string   `json:"title" validate:"required,notblank,max=200"`
	Content  string   `json:"content" validate:"required,notblank,max=20000"`
	Category string   `json:"category" validate:"max=50"`
	Tags     []string `json:"tags" validate:"max=10,dive,max=30"`
}

type updatePostRequest struct {
	Title    *string  `json:"title" validate:"omitempty,notblank,max=200"`
	Content  *string  `json:"content" validate:"omitempty,notblank,max=20000"`
	Category *string  `json:"category" validate:"omitempty,max=50"`
	Tags     []string `json:"tags" validate:"omitempty,max=10,dive,max=30"`
}

type commentRequest struct {
	Content string `json:"content" validate:"required,notblank,max=5000"`
}

// ListPosts handles GET /api/forum/posts[?category=].
func (h *ForumHandler) ListPosts(c echo.Context) error {
	posts, err := h.uc.ListPosts(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, posts)
}

// GetPost handles GET /api/forum/posts/:id.
func (h *ForumHandler) GetPost(c echo.Context) error {
	postID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	post, err := h.uc.GetPost(c.Request().Context(), postID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, post)
}

// CreatePost handles POST /api/forum/posts.
func (h *ForumHandler) CreatePost(c echo.Context) error {
	userID, err := caller(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req createPostRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	post, err := h.uc.CreatePost(c.Request().Context(), userID, &usecase.CreatePostInput{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		Tags:     req.Tags,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, post)
}

// UpdatePost handles PATCH /api/forum/posts/:id.
func (h *ForumHandler) UpdatePost(c echo.Context) error {
	userID, postID, err := callerAndID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req updatePostRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	post, err := h.uc.UpdatePost(c.Request().Context(), userID, postID, entity.ForumPostUpdate{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		Tags:     req.Tags,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, post)
}

// DeletePost handles DELETE /api/forum/posts/:id.
func (h *ForumHandler) DeletePost(c echo.Context) error {
	userID, postID, err := callerAndID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.uc.DeletePost(c.Request().Context(), userID, postID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// ListComments handles GET /api/forum/posts/:id/comments.
func (h *ForumHandler) ListComments(c echo.Context) error {
	postID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	comments, err := h.uc.ListComments(c.Request().Context(), postID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, comments)
}

// CreateComment handles POST /api/forum/posts/:id/comments.
func (h *ForumHandler) CreateComment(c echo.Context) error {
	userID, postID, err := callerAndID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req commentRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	comment, err := h.uc.CreateComment(c.Request().Context(), userID, postID, req.Content)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, comment)
}

// UpdateComment handles PATCH /api/forum/comments/:id.
func (h *ForumHandler) UpdateComment(c echo.Context) error {
	userID, commentID, err := callerAndID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req commentRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	comment, err := h.uc.UpdateComment(c.Request().Context(), userID, commentID, req.Content)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, comment)
}

// DeleteComment handles DELETE /api/forum/comments/:id.
func (h *ForumHandler) DeleteComment(c echo.Context) error {
	userID, commentID, err := callerAndID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.uc.DeleteComment(c.Request().Context(), userID, commentID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
