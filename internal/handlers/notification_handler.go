package handlers

import (
	"net/http"

	"github.com/collegegram/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// NotificationHandler handles notification-related HTTP requests
type NotificationHandler struct {
	notificationService services.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notifications services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notifications}
}

// RegisterNotificationRoutes registers notification routes
func (h *NotificationHandler) RegisterNotificationRoutes(g *echo.Group) {
	g.GET("/notifications", h.GetNotifications)
	g.GET("/notifications/unread-count", h.GetUnreadCount)
	g.PUT("/notifications/:id/read", h.MarkAsRead)
	g.DELETE("/notifications/:id", h.Dismiss)
	g.POST("/notifications/suggestions", h.SuggestPeople)
}

// GetNotifications returns the caller's notifications with sender snapshots
func (h *NotificationHandler) GetNotifications(c echo.Context) error {
	currentID := currentProfileID(c)
	if currentID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	views, err := h.notificationService.List(c.Request().Context(), currentID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"notifications": views}})
}

// GetUnreadCount returns the unread notification count
func (h *NotificationHandler) GetUnreadCount(c echo.Context) error {
	currentID := currentProfileID(c)
	if currentID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	count, err := h.notificationService.UnreadCount(c.Request().Context(), currentID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"count": count}})
}

// MarkAsRead marks a notification as read; repeating it succeeds
func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	currentID := currentProfileID(c)
	if currentID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	if err := h.notificationService.MarkRead(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// Dismiss deletes a notification; dismissing an absent one succeeds
func (h *NotificationHandler) Dismiss(c echo.Context) error {
	currentID := currentProfileID(c)
	if currentID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	if err := h.notificationService.Dismiss(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// SuggestPeople generates friend suggestion entries for the caller
func (h *NotificationHandler) SuggestPeople(c echo.Context) error {
	currentID := currentProfileID(c)
	if currentID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	created, err := h.notificationService.SuggestPeople(c.Request().Context(), currentID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"created": created}})
}
