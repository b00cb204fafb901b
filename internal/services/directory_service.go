package services

import (
	"context"
	"strings"
	"time"

	"github.com/collegegram/backend/internal/models"
	"github.com/collegegram/backend/internal/repositories"
)

// DirectoryService is the people directory: read-only lookup of profiles by
// display name.
type DirectoryService interface {
	Search(ctx context.Context, query string) ([]models.Profile, error)
}

type directoryService struct {
	profiles repositories.ProfileRepository
	timeout  time.Duration
}

// NewDirectoryService creates a new DirectoryService
func NewDirectoryService(profiles repositories.ProfileRepository, timeout time.Duration) DirectoryService {
	return &directoryService{profiles: profiles, timeout: timeout}
}

// Search matches profiles whose full_name contains the query,
// case-insensitively. A blank query returns an empty result without touching
// storage; a query with no matches returns an empty result, not an error.
func (s *directoryService) Search(ctx context.Context, query string) ([]models.Profile, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.Profile{}, nil
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	return s.profiles.SearchByName(ctx, query)
}
