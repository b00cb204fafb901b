package handlers

import (
	"net/http"

	"github.com/collegegram/backend/internal/models"
	"github.com/collegegram/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// PostHandler handles post-related HTTP requests
type PostHandler struct {
	postService services.PostService
	likeService services.LikeService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(posts services.PostService, likes services.LikeService) *PostHandler {
	return &PostHandler{postService: posts, likeService: likes}
}

// RegisterPostRoutes registers post and like routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.GET("/posts/:id", h.GetPost)
	g.GET("/profiles/:id/posts", h.ListByAuthor)
	g.POST("/posts/:id/likes", h.LikePost)
	g.DELETE("/posts/:id/likes", h.UnlikePost)
}

// CreatePost creates a new post for the authenticated caller
func (h *PostHandler) CreatePost(c echo.Context) error {
	currentID := currentProfileID(c)
	if currentID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	req := new(models.CreatePostRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return httpError(err)
	}

	post, err := h.postService.Create(c.Request().Context(), currentID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": post})
}

// GetPost returns a single post
func (h *PostHandler) GetPost(c echo.Context) error {
	post, err := h.postService.GetPost(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": post})
}

// ListByAuthor returns a profile's posts, newest first
func (h *PostHandler) ListByAuthor(c echo.Context) error {
	posts, err := h.postService.ListByAuthor(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": posts})
}

// LikePost adds the caller to the post's like set; liking twice succeeds
func (h *PostHandler) LikePost(c echo.Context) error {
	currentID := currentProfileID(c)
	if currentID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	if err := h.likeService.Like(c.Request().Context(), currentID, c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"liked": true}})
}

// UnlikePost removes the caller from the post's like set
func (h *PostHandler) UnlikePost(c echo.Context) error {
	currentID := currentProfileID(c)
	if currentID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	if err := h.likeService.Unlike(c.Request().Context(), currentID, c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"liked": false}})
}
