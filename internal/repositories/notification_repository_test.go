package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/collegegram/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationCreateDeduplicates(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresNotificationRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, models.NewLikeNotification("author", "liker", "post1"))
	require.NoError(t, err)
	assert.True(t, created)

	// Same (recipient, sender, kind, subject) again: skipped, no error.
	created, err = repo.Create(ctx, models.NewLikeNotification("author", "liker", "post1"))
	require.NoError(t, err)
	assert.False(t, created)

	// A different subject is a distinct notification.
	created, err = repo.Create(ctx, models.NewLikeNotification("author", "liker", "post2"))
	require.NoError(t, err)
	assert.True(t, created)

	list, err := repo.ListByRecipient(ctx, "author")
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestNotificationListNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresNotificationRepository(db)
	ctx := context.Background()

	base := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	older := models.NewFollowRequestNotification("me", "a")
	older.CreatedAt = base
	newer := models.NewLikeNotification("me", "b", "post1")
	newer.CreatedAt = base.Add(time.Hour)

	_, err := repo.Create(ctx, older)
	require.NoError(t, err)
	_, err = repo.Create(ctx, newer)
	require.NoError(t, err)

	list, err := repo.ListByRecipient(ctx, "me")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	assert.Equal(t, older.ID, list[1].ID)

	// Another recipient sees nothing.
	list, err = repo.ListByRecipient(ctx, "someone-else")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestNotificationMarkRead(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresNotificationRepository(db)
	ctx := context.Background()

	n := models.NewLikeNotification("me", "a", "post1")
	_, err := repo.Create(ctx, n)
	require.NoError(t, err)

	require.NoError(t, repo.MarkRead(ctx, n.ID))

	list, err := repo.ListByRecipient(ctx, "me")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].IsRead)

	// Marking again, or marking an absent ID, is a no-op success.
	require.NoError(t, repo.MarkRead(ctx, n.ID))
	require.NoError(t, repo.MarkRead(ctx, "does-not-exist"))
}

func TestNotificationMarkReadSkipsSuggestions(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresNotificationRepository(db)
	ctx := context.Background()

	s := models.NewSuggestionNotification("me", "them")
	_, err := repo.Create(ctx, s)
	require.NoError(t, err)

	require.NoError(t, repo.MarkRead(ctx, s.ID))

	list, err := repo.ListByRecipient(ctx, "me")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.False(t, list[0].IsRead)
}

func TestNotificationDismiss(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresNotificationRepository(db)
	ctx := context.Background()

	unread := models.NewLikeNotification("me", "a", "post1")
	read := models.NewFollowAcceptNotification("me", "b")
	_, err := repo.Create(ctx, unread)
	require.NoError(t, err)
	_, err = repo.Create(ctx, read)
	require.NoError(t, err)
	require.NoError(t, repo.MarkRead(ctx, read.ID))

	// Both unread and read entries can be dismissed.
	require.NoError(t, repo.Delete(ctx, unread.ID))
	require.NoError(t, repo.Delete(ctx, read.ID))

	list, err := repo.ListByRecipient(ctx, "me")
	require.NoError(t, err)
	assert.Empty(t, list)

	// Dismissing an absent ID is a no-op.
	require.NoError(t, repo.Delete(ctx, unread.ID))
}

func TestNotificationUnreadCount(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresNotificationRepository(db)
	ctx := context.Background()

	first := models.NewLikeNotification("me", "a", "post1")
	second := models.NewFollowRequestNotification("me", "b")
	suggestion := models.NewSuggestionNotification("me", "c")
	for _, n := range []*models.Notification{first, second, suggestion} {
		_, err := repo.Create(ctx, n)
		require.NoError(t, err)
	}

	// Suggestions carry no read state and do not count.
	count, err := repo.UnreadCount(ctx, "me")
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	require.NoError(t, repo.MarkRead(ctx, first.ID))
	count, err = repo.UnreadCount(ctx, "me")
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
