package repositories

import (
	"testing"

	"github.com/collegegram/backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Profile{},
		&models.Friendship{},
		&models.Notification{},
	))
	return db
}

func seedProfile(t *testing.T, db *gorm.DB, id, fullName string) {
	t.Helper()
	profile := models.Profile{ID: id}
	if fullName != "" {
		profile.FullName = &fullName
	}
	require.NoError(t, db.Create(&profile).Error)
}
