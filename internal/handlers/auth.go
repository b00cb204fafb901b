package handlers

import (
	"net/http"

	"github.com/collegegram/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// AuthHandler handles identity bootstrap. Credential validation itself is
// Firebase's job; by the time a request gets here the middleware has already
// verified the token.
type AuthHandler struct {
	profileRepository repositories.ProfileRepository
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(profileRepo repositories.ProfileRepository) *AuthHandler {
	return &AuthHandler{profileRepository: profileRepo}
}

// RegisterAuthRoutes registers auth routes
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/auth/sync", h.SyncProfile)
}

// SyncProfile ensures a profile row exists for the verified identity.
// Called by the client after sign-in; repeat calls return the existing row.
func (h *AuthHandler) SyncProfile(c echo.Context) error {
	currentID := currentProfileID(c)
	if currentID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	profile, err := h.profileRepository.EnsureProfile(c.Request().Context(), currentID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": profile})
}
