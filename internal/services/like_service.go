package services

import (
	"context"
	"time"

	"github.com/collegegram/backend/internal/models"
	"github.com/collegegram/backend/internal/repositories"
	"github.com/sirupsen/logrus"
)

// LikeService is the like ledger: idempotent like/unlike on a post plus the
// like notification to its author.
type LikeService interface {
	Like(ctx context.Context, userID, postID string) error
	Unlike(ctx context.Context, userID, postID string) error
}

type likeService struct {
	posts         repositories.PostRepository
	notifications repositories.NotificationRepository
	log           *logrus.Logger
	timeout       time.Duration
}

// NewLikeService creates a new LikeService
func NewLikeService(
	posts repositories.PostRepository,
	notifications repositories.NotificationRepository,
	log *logrus.Logger,
	timeout time.Duration,
) LikeService {
	return &likeService{posts: posts, notifications: notifications, log: log, timeout: timeout}
}

// Like inserts userID into the post's like set. Liking twice is a no-op
// success. The author is notified only when the set actually grew and the
// liker is not the author; an unlike/like cycle does not produce a second
// notification because the insert is deduplicated per (sender, post).
func (s *likeService) Like(ctx context.Context, userID, postID string) error {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	post, err := s.posts.GetPostByID(ctx, postID)
	if err != nil {
		return err
	}

	added, err := s.posts.AddLike(ctx, postID, userID)
	if err != nil {
		return err
	}
	if !added || userID == post.AuthorID {
		return nil
	}

	n := models.NewLikeNotification(post.AuthorID, userID, postID)
	if _, err := s.notifications.Create(ctx, n); err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"post_id":   postID,
			"sender_id": userID,
		}).Warn("failed to create like notification")
	}
	return nil
}

// Unlike removes userID from the post's like set. Removing an absent entry
// is a no-op success, and a previously sent notification is not retracted.
func (s *likeService) Unlike(ctx context.Context, userID, postID string) error {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.posts.RemoveLike(ctx, postID, userID)
	return err
}
