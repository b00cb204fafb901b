package handlers

import (
	"net/http"

	"github.com/collegegram/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// RelationshipHandler handles friend add/remove HTTP requests
type RelationshipHandler struct {
	relationshipService services.RelationshipService
}

// NewRelationshipHandler creates a new RelationshipHandler
func NewRelationshipHandler(relationships services.RelationshipService) *RelationshipHandler {
	return &RelationshipHandler{relationshipService: relationships}
}

// RegisterRelationshipRoutes registers relationship routes
func (h *RelationshipHandler) RegisterRelationshipRoutes(g *echo.Group) {
	g.POST("/profiles/:id/friend", h.AddFriend)
	g.DELETE("/profiles/:id/friend", h.RemoveFriend)
	g.GET("/me/friends", h.ListFriends)
}

// AddFriend befriends the target profile (or accepts their pending request)
func (h *RelationshipHandler) AddFriend(c echo.Context) error {
	currentID := currentProfileID(c)
	if currentID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	if err := h.relationshipService.AddFriend(c.Request().Context(), currentID, c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"friends": true}})
}

// RemoveFriend unfriends the target profile; removing a non-friend succeeds
func (h *RelationshipHandler) RemoveFriend(c echo.Context) error {
	currentID := currentProfileID(c)
	if currentID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	if err := h.relationshipService.RemoveFriend(c.Request().Context(), currentID, c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"friends": false}})
}

// ListFriends returns the caller's friends
func (h *RelationshipHandler) ListFriends(c echo.Context) error {
	currentID := currentProfileID(c)
	if currentID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	friends, err := h.relationshipService.ListFriends(c.Request().Context(), currentID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": friends})
}
