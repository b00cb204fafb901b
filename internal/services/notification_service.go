package services

import (
	"context"
	"time"

	"github.com/collegegram/backend/internal/models"
	"github.com/collegegram/backend/internal/repositories"
	"github.com/sirupsen/logrus"
)

// maxSuggestions caps how many suggestion entries one sweep creates.
const maxSuggestions = 10

// NotificationView is a notification joined with a snapshot of the sender's
// current name and avatar. The join happens at read time so the view always
// reflects the sender's latest profile, never a stale copy.
type NotificationView struct {
	models.Notification
	SenderName      *string `json:"sender_name"`
	SenderAvatarURL *string `json:"sender_avatar_url"`
	Age             string  `json:"age"`
}

// NotificationService is the notification center: listing with sender
// snapshots, the one-way read transition, dismissal and friend suggestions.
type NotificationService interface {
	List(ctx context.Context, recipientID string) ([]NotificationView, error)
	MarkRead(ctx context.Context, id string) error
	Dismiss(ctx context.Context, id string) error
	UnreadCount(ctx context.Context, recipientID string) (int64, error)
	SuggestPeople(ctx context.Context, recipientID string) (int, error)
}

type notificationService struct {
	notifications repositories.NotificationRepository
	profiles      repositories.ProfileRepository
	friendships   repositories.FriendshipRepository
	log           *logrus.Logger
	timeout       time.Duration
	now           func() time.Time
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(
	notifications repositories.NotificationRepository,
	profiles repositories.ProfileRepository,
	friendships repositories.FriendshipRepository,
	log *logrus.Logger,
	timeout time.Duration,
) NotificationService {
	return &notificationService{
		notifications: notifications,
		profiles:      profiles,
		friendships:   friendships,
		log:           log,
		timeout:       timeout,
		now:           time.Now,
	}
}

// List returns the recipient's notifications newest first, each joined with
// the sender's current full_name and avatar_url.
func (s *notificationService) List(ctx context.Context, recipientID string) ([]NotificationView, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	notifications, err := s.notifications.ListByRecipient(ctx, recipientID)
	if err != nil {
		return nil, err
	}

	senderIDs := make([]string, 0, len(notifications))
	seen := map[string]bool{}
	for _, n := range notifications {
		if !seen[n.SenderID] {
			seen[n.SenderID] = true
			senderIDs = append(senderIDs, n.SenderID)
		}
	}
	senders, err := s.profiles.GetProfiles(ctx, senderIDs)
	if err != nil {
		return nil, err
	}
	senderMap := make(map[string]models.Profile, len(senders))
	for _, p := range senders {
		senderMap[p.ID] = p
	}

	now := s.now()
	views := make([]NotificationView, len(notifications))
	for i, n := range notifications {
		views[i] = NotificationView{
			Notification: n,
			Age:          models.RelativeAge(now, n.CreatedAt),
		}
		if sender, ok := senderMap[n.SenderID]; ok {
			views[i].SenderName = sender.FullName
			views[i].SenderAvatarURL = sender.AvatarURL
		}
	}
	return views, nil
}

// MarkRead flips a notification to read. Unread to read is one-way; marking
// an absent or already-read entry again is a no-op success.
func (s *notificationService) MarkRead(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	return s.notifications.MarkRead(ctx, id)
}

// Dismiss deletes a notification; dismissing an absent ID is a no-op.
func (s *notificationService) Dismiss(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	return s.notifications.Delete(ctx, id)
}

// UnreadCount returns how many unread event notifications the recipient has.
func (s *notificationService) UnreadCount(ctx context.Context, recipientID string) (int64, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	return s.notifications.UnreadCount(ctx, recipientID)
}

// SuggestPeople sweeps the recipient's friends-of-friends and records a
// suggestion notification for each candidate the recipient is not already
// friends with. Re-running the sweep is idempotent. Returns how many new
// entries were created.
func (s *notificationService) SuggestPeople(ctx context.Context, recipientID string) (int, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.profiles.GetProfile(ctx, recipientID); err != nil {
		return 0, err
	}

	friendIDs, err := s.friendships.ListFriendIDs(ctx, recipientID)
	if err != nil {
		return 0, err
	}
	friends := map[string]bool{recipientID: true}
	for _, id := range friendIDs {
		friends[id] = true
	}

	created := 0
	suggested := map[string]bool{}
	for _, friendID := range friendIDs {
		candidates, err := s.friendships.ListFriendIDs(ctx, friendID)
		if err != nil {
			s.log.WithError(err).WithField("friend_id", friendID).
				Warn("failed to list friends-of-friends for suggestions")
			continue
		}
		for _, candidate := range candidates {
			if friends[candidate] || suggested[candidate] {
				continue
			}
			suggested[candidate] = true
			ok, err := s.notifications.Create(ctx, models.NewSuggestionNotification(recipientID, candidate))
			if err != nil {
				s.log.WithError(err).WithField("candidate_id", candidate).
					Warn("failed to create suggestion notification")
				continue
			}
			if ok {
				created++
			}
			if created >= maxSuggestions {
				return created, nil
			}
		}
	}
	return created, nil
}
