package repositories

import (
	"context"
	"strings"

	"github.com/collegegram/backend/internal/models"
	"gorm.io/gorm"
)

// ProfileRepository defines the interface for profile data operations
type ProfileRepository interface {
	GetProfile(ctx context.Context, id string) (*models.Profile, error)
	GetProfiles(ctx context.Context, ids []string) ([]models.Profile, error)
	EnsureProfile(ctx context.Context, id string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, id string, fields map[string]any) (*models.Profile, error)
	SearchByName(ctx context.Context, query string) ([]models.Profile, error)
}

// PostgresProfileRepository implements ProfileRepository for PostgreSQL
type PostgresProfileRepository struct {
	db *gorm.DB
}

// NewPostgresProfileRepository creates a new PostgresProfileRepository
func NewPostgresProfileRepository(db *gorm.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

// GetProfile retrieves a profile by ID
func (r *PostgresProfileRepository) GetProfile(ctx context.Context, id string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &profile, nil
}

// GetProfiles retrieves the profiles for the given IDs; absent IDs are skipped.
func (r *PostgresProfileRepository) GetProfiles(ctx context.Context, ids []string) ([]models.Profile, error) {
	profiles := []models.Profile{}
	if len(ids) == 0 {
		return profiles, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&profiles).Error; err != nil {
		return nil, translateError(err)
	}
	return profiles, nil
}

// EnsureProfile creates an empty profile row for the given identity if one
// does not exist yet and returns the current record. Called on first login.
func (r *PostgresProfileRepository) EnsureProfile(ctx context.Context, id string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.WithContext(ctx).Where(models.Profile{ID: id}).FirstOrCreate(&profile).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &profile, nil
}

// UpdateProfile applies a partial update and returns the fresh record.
func (r *PostgresProfileRepository) UpdateProfile(ctx context.Context, id string, fields map[string]any) (*models.Profile, error) {
	if len(fields) > 0 {
		res := r.db.WithContext(ctx).Model(&models.Profile{}).Where("id = ?", id).Updates(fields)
		if res.Error != nil {
			return nil, translateError(res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, models.ErrNotFound
		}
	}
	return r.GetProfile(ctx, id)
}

// SearchByName performs a case-insensitive substring match on full_name.
// Profiles without a name never match. Results come back in creation order.
func (r *PostgresProfileRepository) SearchByName(ctx context.Context, query string) ([]models.Profile, error) {
	profiles := []models.Profile{}
	pattern := "%" + strings.ToLower(query) + "%"
	err := r.db.WithContext(ctx).
		Where("full_name IS NOT NULL AND LOWER(full_name) LIKE ?", pattern).
		Order("created_at ASC, id ASC").
		Find(&profiles).Error
	if err != nil {
		return nil, translateError(err)
	}
	return profiles, nil
}
