package services

import (
	"context"
	"errors"
	"time"

	"github.com/collegegram/backend/internal/models"
	"github.com/collegegram/backend/internal/repositories"
	"github.com/sirupsen/logrus"
)

// RelationshipService manages the symmetric friend relation between two
// profiles. Edge mutations always touch both half-edges atomically.
type RelationshipService interface {
	AddFriend(ctx context.Context, userID, targetID string) error
	RemoveFriend(ctx context.Context, userID, targetID string) error
	ListFriends(ctx context.Context, userID string) ([]models.Profile, error)
}

type relationshipService struct {
	profiles      repositories.ProfileRepository
	friendships   repositories.FriendshipRepository
	notifications repositories.NotificationRepository
	log           *logrus.Logger
	timeout       time.Duration
}

// NewRelationshipService creates a new RelationshipService
func NewRelationshipService(
	profiles repositories.ProfileRepository,
	friendships repositories.FriendshipRepository,
	notifications repositories.NotificationRepository,
	log *logrus.Logger,
	timeout time.Duration,
) RelationshipService {
	return &relationshipService{
		profiles:      profiles,
		friendships:   friendships,
		notifications: notifications,
		log:           log,
		timeout:       timeout,
	}
}

// AddFriend connects userID and targetID. A fresh request inserts both
// half-edges and notifies the target with follow_request; the target calling
// back flips the pair to accepted and notifies the initiator with
// follow_accept. Repeating an established request returns ErrAlreadyFriends.
func (s *relationshipService) AddFriend(ctx context.Context, userID, targetID string) error {
	if userID == targetID {
		return models.ErrSelfRelation
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.profiles.GetProfile(ctx, targetID); err != nil {
		return err
	}

	edge, err := s.friendships.GetEdge(ctx, userID, targetID)
	switch {
	case errors.Is(err, models.ErrNotFound):
		if err := s.friendships.CreatePair(ctx, userID, targetID); err != nil {
			return err
		}
		s.notify(ctx, models.NewFollowRequestNotification(targetID, userID))
		return nil
	case err != nil:
		return err
	}

	if edge.Status == models.FriendshipRequested && edge.RequestedBy == targetID {
		if err := s.friendships.AcceptPair(ctx, userID, targetID); err != nil {
			return err
		}
		s.notify(ctx, models.NewFollowAcceptNotification(targetID, userID))
		return nil
	}
	return models.ErrAlreadyFriends
}

// RemoveFriend disconnects the pair. Removing a non-existent friendship is a
// no-op success; no notification is emitted on removal, and the pair's old
// request/accept notifications are cleared along with the edges.
func (s *relationshipService) RemoveFriend(ctx context.Context, userID, targetID string) error {
	if userID == targetID {
		return models.ErrSelfRelation
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	return s.friendships.DeletePair(ctx, userID, targetID)
}

// ListFriends returns the user's friend profiles.
func (s *relationshipService) ListFriends(ctx context.Context, userID string) ([]models.Profile, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.profiles.GetProfile(ctx, userID); err != nil {
		return nil, err
	}
	return s.friendships.ListFriends(ctx, userID)
}

// notify records a relationship notification. A failed insert never fails
// the relationship mutation itself; it is logged and the next identical
// action re-inserts it.
func (s *relationshipService) notify(ctx context.Context, n *models.Notification) {
	if _, err := s.notifications.Create(ctx, n); err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"recipient_id": n.RecipientID,
			"kind":         n.Kind,
		}).Warn("failed to create relationship notification")
	}
}
