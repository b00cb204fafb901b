package services

import (
	"context"
	"testing"

	"github.com/collegegram/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeNotifiesAuthorOnce(t *testing.T) {
	env := newTestEnv(t)
	svc := env.likes()
	ctx := context.Background()

	env.seedProfile(t, "author", "Ada")
	env.seedProfile(t, "liker", "Bo")

	post, err := env.postService().Create(ctx, "author", &models.CreatePostRequest{ImageURL: "https://img.example/p.jpg"})
	require.NoError(t, err)
	postID := post.ID.Hex()

	require.NoError(t, svc.Like(ctx, "liker", postID))

	got, err := env.posts.GetPostByID(ctx, postID)
	require.NoError(t, err)
	assert.True(t, got.HasLike("liker"))

	list := env.notificationsFor(t, "author")
	require.Len(t, list, 1)
	assert.Equal(t, models.NotificationLike, list[0].Kind)
	assert.Equal(t, "liker", list[0].SenderID)

	// Liking again is a no-op and must not duplicate the notification.
	require.NoError(t, svc.Like(ctx, "liker", postID))
	assert.Len(t, env.notificationsFor(t, "author"), 1)

	// Nor does an unlike/like cycle.
	require.NoError(t, svc.Unlike(ctx, "liker", postID))
	require.NoError(t, svc.Like(ctx, "liker", postID))
	assert.Len(t, env.notificationsFor(t, "author"), 1)
}

func TestLikeOwnPostSkipsNotification(t *testing.T) {
	env := newTestEnv(t)
	svc := env.likes()
	ctx := context.Background()

	env.seedProfile(t, "author", "Ada")

	post, err := env.postService().Create(ctx, "author", &models.CreatePostRequest{ImageURL: "https://img.example/p.jpg"})
	require.NoError(t, err)

	require.NoError(t, svc.Like(ctx, "author", post.ID.Hex()))

	got, err := env.posts.GetPostByID(ctx, post.ID.Hex())
	require.NoError(t, err)
	assert.True(t, got.HasLike("author"))
	assert.Empty(t, env.notificationsFor(t, "author"))
}

func TestUnlike(t *testing.T) {
	env := newTestEnv(t)
	svc := env.likes()
	ctx := context.Background()

	env.seedProfile(t, "author", "Ada")
	env.seedProfile(t, "liker", "Bo")

	post, err := env.postService().Create(ctx, "author", &models.CreatePostRequest{ImageURL: "https://img.example/p.jpg"})
	require.NoError(t, err)
	postID := post.ID.Hex()

	// Unliking before ever liking is a no-op success.
	require.NoError(t, svc.Unlike(ctx, "liker", postID))

	require.NoError(t, svc.Like(ctx, "liker", postID))
	require.NoError(t, svc.Unlike(ctx, "liker", postID))

	got, err := env.posts.GetPostByID(ctx, postID)
	require.NoError(t, err)
	assert.False(t, got.HasLike("liker"))
}

func TestLikeMissingPost(t *testing.T) {
	env := newTestEnv(t)
	svc := env.likes()
	ctx := context.Background()

	env.seedProfile(t, "liker", "Bo")

	assert.ErrorIs(t, svc.Like(ctx, "liker", "66f0c0ffee0000000000dead"), models.ErrNotFound)
	assert.ErrorIs(t, svc.Unlike(ctx, "liker", "66f0c0ffee0000000000dead"), models.ErrNotFound)
}
