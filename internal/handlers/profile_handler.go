package handlers

import (
	"net/http"

	"github.com/collegegram/backend/internal/models"
	"github.com/collegegram/backend/internal/repositories"
	"github.com/collegegram/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// ProfileHandler handles profile-related HTTP requests
type ProfileHandler struct {
	profileRepository repositories.ProfileRepository
	directoryService  services.DirectoryService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileRepo repositories.ProfileRepository, directory services.DirectoryService) *ProfileHandler {
	return &ProfileHandler{
		profileRepository: profileRepo,
		directoryService:  directory,
	}
}

// RegisterProfileRoutes registers profile routes
func (h *ProfileHandler) RegisterProfileRoutes(g *echo.Group) {
	g.GET("/profiles/search", h.SearchProfiles)
	g.GET("/profiles/:id", h.GetProfile)
	g.PUT("/profiles/me", h.UpdateProfile)
}

// GetProfile returns a profile by ID
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	profile, err := h.profileRepository.GetProfile(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": profile})
}

// UpdateProfile applies a partial update to the caller's own profile
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	currentID := currentProfileID(c)
	if currentID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	req := new(models.UpdateProfileRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return httpError(err)
	}

	profile, err := h.profileRepository.UpdateProfile(c.Request().Context(), currentID, req.Fields())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": profile})
}

// SearchProfiles searches profiles by display name
func (h *ProfileHandler) SearchProfiles(c echo.Context) error {
	profiles, err := h.directoryService.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": profiles})
}
