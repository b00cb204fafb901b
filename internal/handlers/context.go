package handlers

import (
	"errors"
	"net/http"

	"github.com/collegegram/backend/internal/models"
	"github.com/labstack/echo/v4"
)

// currentProfileID returns the authenticated caller's profile ID set by the
// auth middleware, or "" when the request is unauthenticated.
func currentProfileID(c echo.Context) string {
	id, _ := c.Get("profileID").(string)
	return id
}

// httpError maps domain errors onto HTTP status codes.
func httpError(err error) error {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrSelfRelation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrAlreadyFriends):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, models.ErrValidation):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, models.ErrTransientStorage):
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
