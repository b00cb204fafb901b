package services

import (
	"context"
	"testing"
	"time"

	"github.com/collegegram/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// postAt creates a post directly in the store with a fixed creation time.
func (e *testEnv) postAt(t *testing.T, authorID, imageURL string, at time.Time) models.Post {
	t.Helper()
	e.posts.Now = func() time.Time { return at }
	post := models.Post{AuthorID: authorID, ImageURL: imageURL, Description: models.DefaultDescription}
	require.NoError(t, e.posts.CreatePost(context.Background(), &post))
	return post
}

func TestFeedFriendsModeNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.seedProfile(t, "viewer", "Vi")
	env.seedProfile(t, "friend1", "Ada")
	env.seedProfile(t, "friend2", "Bo")
	env.seedProfile(t, "stranger", "Cy")
	env.befriend(t, "viewer", "friend1")
	env.befriend(t, "viewer", "friend2")

	base := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	// Inserted out of chronological order on purpose.
	middle := env.postAt(t, "friend2", "https://img.example/2.jpg", base.Add(time.Hour))
	oldest := env.postAt(t, "friend1", "https://img.example/1.jpg", base)
	newest := env.postAt(t, "friend1", "https://img.example/3.jpg", base.Add(2*time.Hour))
	env.postAt(t, "stranger", "https://img.example/x.jpg", base.Add(3*time.Hour))

	svc := env.feed(FeedPolicy{Mode: FeedModeFriends})
	items, err := svc.Assemble(ctx, "viewer")
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, newest.ID, items[0].ID)
	assert.Equal(t, middle.ID, items[1].ID)
	assert.Equal(t, oldest.ID, items[2].ID)

	// Author snapshot is joined in at read time.
	if assert.NotNil(t, items[0].AuthorName) {
		assert.Equal(t, "Ada", *items[0].AuthorName)
	}
	if assert.NotNil(t, items[1].AuthorName) {
		assert.Equal(t, "Bo", *items[1].AuthorName)
	}
}

func TestFeedAllMode(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.seedProfile(t, "viewer", "Vi")
	env.seedProfile(t, "someone", "Ada")

	base := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	env.postAt(t, "someone", "https://img.example/1.jpg", base)

	svc := env.feed(FeedPolicy{Mode: FeedModeAll})
	items, err := svc.Assemble(ctx, "viewer")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestFeedFallbackToAll(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.seedProfile(t, "viewer", "Vi")
	env.seedProfile(t, "someone", "Ada")

	base := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	post := env.postAt(t, "someone", "https://img.example/1.jpg", base)

	// No friends and no fallback: empty, but a valid non-nil result.
	items, err := env.feed(FeedPolicy{Mode: FeedModeFriends}).Assemble(ctx, "viewer")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	// With fallback the feed widens to every post.
	items, err = env.feed(FeedPolicy{Mode: FeedModeFriends, FallbackToAll: true}).Assemble(ctx, "viewer")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, post.ID, items[0].ID)
}

func TestFeedUnknownViewer(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.feed(FeedPolicy{}).Assemble(context.Background(), "ghost")
	assert.ErrorIs(t, err, models.ErrNotFound)
}
