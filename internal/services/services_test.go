package services

import (
	"context"
	"io"
	"testing"

	"github.com/collegegram/backend/internal/models"
	"github.com/collegegram/backend/internal/repositories"
	"github.com/collegegram/backend/internal/repositories/inmem"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv wires the services against an in-memory SQLite database and the
// in-memory post store.
type testEnv struct {
	db            *gorm.DB
	profiles      repositories.ProfileRepository
	friendships   repositories.FriendshipRepository
	notifications repositories.NotificationRepository
	posts         *inmem.PostStore
	log           *logrus.Logger
}

func newTestEnv(t *testing.T) *testEnv {
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

	log := logrus.New()
	log.SetOutput(io.Discard)

	return &testEnv{
		db:            db,
		profiles:      repositories.NewPostgresProfileRepository(db),
		friendships:   repositories.NewPostgresFriendshipRepository(db),
		notifications: repositories.NewPostgresNotificationRepository(db),
		posts:         inmem.NewPostStore(),
		log:           log,
	}
}

func (e *testEnv) seedProfile(t *testing.T, id, fullName string) {
	t.Helper()
	profile := models.Profile{ID: id}
	if fullName != "" {
		profile.FullName = &fullName
	}
	require.NoError(t, e.db.Create(&profile).Error)
}

// befriend makes the two profiles accepted friends directly in storage.
func (e *testEnv) befriend(t *testing.T, a, b string) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, e.friendships.CreatePair(ctx, a, b))
	require.NoError(t, e.friendships.AcceptPair(ctx, b, a))
}

func (e *testEnv) notificationsFor(t *testing.T, recipientID string) []models.Notification {
	t.Helper()
	list, err := e.notifications.ListByRecipient(context.Background(), recipientID)
	require.NoError(t, err)
	return list
}

func (e *testEnv) relationships() RelationshipService {
	return NewRelationshipService(e.profiles, e.friendships, e.notifications, e.log, DefaultStorageTimeout)
}

func (e *testEnv) postService() PostService {
	return NewPostService(e.posts, e.profiles, e.friendships, e.notifications, e.log, DefaultStorageTimeout)
}

func (e *testEnv) likes() LikeService {
	return NewLikeService(e.posts, e.notifications, e.log, DefaultStorageTimeout)
}

func (e *testEnv) notificationCenter() NotificationService {
	return NewNotificationService(e.notifications, e.profiles, e.friendships, e.log, DefaultStorageTimeout)
}

func (e *testEnv) feed(policy FeedPolicy) FeedService {
	return NewFeedService(e.posts, e.profiles, e.friendships, policy, DefaultStorageTimeout)
}

func (e *testEnv) directory() DirectoryService {
	return NewDirectoryService(e.profiles, DefaultStorageTimeout)
}
