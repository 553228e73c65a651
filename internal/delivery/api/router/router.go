// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"launchpad/internal/delivery/api/middleware"
	"launchpad/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	StartupHandler      *handler.StartupHandler
	PlanningHandler     *handler.PlanningHandler
	TaskHandler         *handler.TaskHandler
	ResourceHandler     *handler.ResourceHandler
	ForumHandler        *handler.ForumHandler
	NotificationHandler *handler.NotificationHandler
	ArtifactHandler     *handler.ArtifactHandler
	AIHandler           *handler.AIHandler
	ExportHandler       *handler.ExportHandler
	HealthHandler       *handler.HealthHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	h := r.params
	requireAuth := h.AuthMiddleware.Authenticate

	e.GET("/health", h.HealthHandler.HealthCheck)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.AuthHandler.Register)
		authGroup.POST("/login", h.AuthHandler.Login)
		authGroup.POST("/refresh", h.AuthHandler.RefreshToken)
		authGroup.POST("/google", h.AuthHandler.GoogleLogin)
		authGroup.GET("/me", h.AuthHandler.Me, requireAuth)
		authGroup.PATCH("/me", h.AuthHandler.UpdateProfile, requireAuth)
	}

	// Startups and everything planned under them
	startupsGroup := api.Group("/startups", requireAuth)
	{
		startupsGroup.GET("", h.StartupHandler.List)
		startupsGroup.POST("", h.StartupHandler.Create)
		startupsGroup.GET("/:id", h.StartupHandler.Get)
		startupsGroup.PATCH("/:id", h.StartupHandler.Update)
		startupsGroup.DELETE("/:id", h.StartupHandler.Delete)
		startupsGroup.GET("/:id/progress", h.StartupHandler.Progress)

		h.PlanningHandler.Register(startupsGroup.Group("/:id"))

		startupsGroup.GET("/:id/tasks", h.TaskHandler.List)
		startupsGroup.POST("/:id/tasks", h.TaskHandler.Create)

		startupsGroup.GET("/:id/artifacts", h.ArtifactHandler.List)
		startupsGroup.GET("/:id/artifacts/:kind", h.ArtifactHandler.Get)
		startupsGroup.POST("/:id/artifacts/:kind", h.ArtifactHandler.Save)

		startupsGroup.GET("/:id/export", h.ExportHandler.Bundle)
		startupsGroup.POST("/:id/export", h.ExportHandler.Publish)
		startupsGroup.GET("/:id/export/qr", h.ExportHandler.ShareQR)
	}

	tasksGroup := api.Group("/tasks", requireAuth)
	{
		tasksGroup.GET("/:id", h.TaskHandler.Get)
		tasksGroup.PATCH("/:id", h.TaskHandler.Update)
		tasksGroup.DELETE("/:id", h.TaskHandler.Delete)
	}

	// Resources are public
	resourcesGroup := api.Group("/resources")
	{
		resourcesGroup.GET("", h.ResourceHandler.List)
		resourcesGroup.GET("/category/:category", h.ResourceHandler.ByCategory)
		resourcesGroup.GET("/industry/:industry", h.ResourceHandler.ByIndustry)
		resourcesGroup.GET("/:id", h.ResourceHandler.Get)
	}

	// Forum reads are public, writes need a session
	forumGroup := api.Group("/forum")
	{
		forumGroup.GET("/posts", h.ForumHandler.ListPosts)
		forumGroup.GET("/posts/:id", h.ForumHandler.GetPost)
		forumGroup.GET("/posts/:id/comments", h.ForumHandler.ListComments)
		forumGroup.POST("/posts", h.ForumHandler.CreatePost, requireAuth)
		forumGroup.PATCH("/posts/:id", h.ForumHandler.UpdatePost, requireAuth)
		forumGroup.DELETE("/posts/:id", h.ForumHandler.DeletePost, requireAuth)
		forumGroup.POST("/posts/:id/comments", h.ForumHandler.CreateComment, requireAuth)
		forumGroup.PATCH("/comments/:id", h.ForumHandler.UpdateComment, requireAuth)
		forumGroup.DELETE("/comments/:id", h.ForumHandler.DeleteComment, requireAuth)
	}

	notificationsGroup := api.Group("/notifications", requireAuth)
	{
		notificationsGroup.GET("", h.NotificationHandler.List)
		notificationsGroup.GET("/unread-count", h.NotificationHandler.UnreadCount)
		notificationsGroup.PUT("/read-all", h.NotificationHandler.MarkAllRead)
		notificationsGroup.PUT("/:id/read", h.NotificationHandler.MarkRead)
	}

	aiGroup := api.Group("/ai", requireAuth)
	{
		aiGroup.POST("/analyze-idea", h.AIHandler.AnalyzeIdea)
		aiGroup.POST("/business-model", h.AIHandler.SuggestBusinessModel)
		aiGroup.POST("/pitch-deck", h.AIHandler.GeneratePitchDeck)
	}
}
