package handler

import (
	"net/http"
	"strconv"

	"launchpad/internal/delivery/api/response"
	"launchpad/internal/usecase"

	"github.com/labstack/echo/v4"
)

// NotificationHandler serves the caller's notifications.
type NotificationHandler struct {
	uc usecase.NotificationUsecase
}

// NewNotificationHandler is the constructor for NotificationHandler.
func NewNotificationHandler(uc usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// List handles GET /api/notifications[?unread=true].
func (h *NotificationHandler) List(c echo.Context) error {
	userID, err := caller(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	unreadOnly, _ := strconv.ParseBool(c.QueryParam("unread"))
	rows, err := h.uc.List(c.Request().Context(), userID, unreadOnly)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, rows)
}

// UnreadCount handles GET /api/notifications/unread-count.
func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	userID, err := caller(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	n, err := h.uc.CountUnread(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"count": n})
}

// MarkRead handles PUT /api/notifications/:id/read.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID, notificationID, err := callerAndID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	row, err := h.uc.MarkRead(c.Request().Context(), userID, notificationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, row)
}

// MarkAllRead handles PUT /api/notifications/read-all.
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	userID, err := caller(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	n, err := h.uc.MarkAllRead(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"updated": n})
}
