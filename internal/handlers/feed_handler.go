package handlers

import (
	"net/http"

	"github.com/collegegram/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// FeedHandler handles feed HTTP requests
type FeedHandler struct {
	feedService services.FeedService
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(feed services.FeedService) *FeedHandler {
	return &FeedHandler{feedService: feed}
}

// RegisterFeedRoutes registers feed routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/feed", h.GetFeed)
}

// GetFeed returns the caller's feed with author snapshots attached
func (h *FeedHandler) GetFeed(c echo.Context) error {
	currentID := currentProfileID(c)
	if currentID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	items, err := h.feedService.Assemble(c.Request().Context(), currentID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"posts": items}})
}
