package services

import (
	"context"
	"testing"

	"github.com/collegegram/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddFriendRequestAndAccept(t *testing.T) {
	env := newTestEnv(t)
	svc := env.relationships()
	ctx := context.Background()

	env.seedProfile(t, "a", "Ada")
	env.seedProfile(t, "b", "Bo")

	// First call is a request: pending pair plus a follow_request for b.
	require.NoError(t, svc.AddFriend(ctx, "a", "b"))

	forB := env.notificationsFor(t, "b")
	require.Len(t, forB, 1)
	assert.Equal(t, models.NotificationFollowRequest, forB[0].Kind)
	assert.Equal(t, "a", forB[0].SenderID)

	// Repeating the same request is a conflict, not a second notification.
	assert.ErrorIs(t, svc.AddFriend(ctx, "a", "b"), models.ErrAlreadyFriends)
	assert.Len(t, env.notificationsFor(t, "b"), 1)

	// The target calling back accepts and notifies the initiator.
	require.NoError(t, svc.AddFriend(ctx, "b", "a"))

	forA := env.notificationsFor(t, "a")
	require.Len(t, forA, 1)
	assert.Equal(t, models.NotificationFollowAccept, forA[0].Kind)
	assert.Equal(t, "b", forA[0].SenderID)

	edge, err := env.friendships.GetEdge(ctx, "a", "b")
	require.NoError(t, err)
	assert.Equal(t, models.FriendshipAccepted, edge.Status)

	// Once accepted, either side repeating the call conflicts.
	assert.ErrorIs(t, svc.AddFriend(ctx, "a", "b"), models.ErrAlreadyFriends)
	assert.ErrorIs(t, svc.AddFriend(ctx, "b", "a"), models.ErrAlreadyFriends)
}

func TestAddFriendRejectsSelfAndUnknownTarget(t *testing.T) {
	env := newTestEnv(t)
	svc := env.relationships()
	ctx := context.Background()

	env.seedProfile(t, "a", "Ada")

	assert.ErrorIs(t, svc.AddFriend(ctx, "a", "a"), models.ErrSelfRelation)
	assert.ErrorIs(t, svc.AddFriend(ctx, "a", "ghost"), models.ErrNotFound)
}

func TestRemoveFriend(t *testing.T) {
	env := newTestEnv(t)
	svc := env.relationships()
	ctx := context.Background()

	env.seedProfile(t, "a", "Ada")
	env.seedProfile(t, "b", "Bo")
	env.befriend(t, "a", "b")

	assert.ErrorIs(t, svc.RemoveFriend(ctx, "a", "a"), models.ErrSelfRelation)

	require.NoError(t, svc.RemoveFriend(ctx, "b", "a"))

	// Removal is symmetric and emits nothing.
	friendsA, err := svc.ListFriends(ctx, "a")
	require.NoError(t, err)
	assert.Empty(t, friendsA)
	friendsB, err := svc.ListFriends(ctx, "b")
	require.NoError(t, err)
	assert.Empty(t, friendsB)
	assert.Empty(t, env.notificationsFor(t, "a"))

	// Removing again is a no-op success.
	require.NoError(t, svc.RemoveFriend(ctx, "a", "b"))
}

func TestAddFriendAgainAfterRemoval(t *testing.T) {
	env := newTestEnv(t)
	svc := env.relationships()
	ctx := context.Background()

	env.seedProfile(t, "a", "Ada")
	env.seedProfile(t, "b", "Bo")

	require.NoError(t, svc.AddFriend(ctx, "a", "b"))
	require.NoError(t, svc.AddFriend(ctx, "b", "a"))

	first := env.notificationsFor(t, "b")
	require.Len(t, first, 1)
	assert.Equal(t, models.NotificationFollowRequest, first[0].Kind)

	require.NoError(t, svc.RemoveFriend(ctx, "a", "b"))

	// Removal clears the pair's stale request/accept entries.
	assert.Empty(t, env.notificationsFor(t, "a"))
	assert.Empty(t, env.notificationsFor(t, "b"))

	// A fresh request must reach b again, as a new notification.
	require.NoError(t, svc.AddFriend(ctx, "a", "b"))
	second := env.notificationsFor(t, "b")
	require.Len(t, second, 1)
	assert.Equal(t, models.NotificationFollowRequest, second[0].Kind)
	assert.NotEqual(t, first[0].ID, second[0].ID)
}

func TestListFriends(t *testing.T) {
	env := newTestEnv(t)
	svc := env.relationships()
	ctx := context.Background()

	env.seedProfile(t, "a", "Ada")
	env.seedProfile(t, "b", "Bo")
	env.seedProfile(t, "c", "Cy")
	env.befriend(t, "a", "b")
	env.befriend(t, "a", "c")

	friends, err := svc.ListFriends(ctx, "a")
	require.NoError(t, err)
	assert.Len(t, friends, 2)

	_, err = svc.ListFriends(ctx, "ghost")
	assert.ErrorIs(t, err, models.ErrNotFound)
}
