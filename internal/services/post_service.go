package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/collegegram/backend/internal/models"
	"github.com/collegegram/backend/internal/repositories"
	"github.com/sirupsen/logrus"
)

// PostService owns post creation and retrieval. Creating a post fans out a
// new_post notification to every friend of the author.
type PostService interface {
	Create(ctx context.Context, authorID string, req *models.CreatePostRequest) (*models.Post, error)
	GetPost(ctx context.Context, id string) (*models.Post, error)
	ListByAuthor(ctx context.Context, authorID string) ([]models.Post, error)
}

type postService struct {
	posts         repositories.PostRepository
	profiles      repositories.ProfileRepository
	friendships   repositories.FriendshipRepository
	notifications repositories.NotificationRepository
	log           *logrus.Logger
	timeout       time.Duration
}

// NewPostService creates a new PostService
func NewPostService(
	posts repositories.PostRepository,
	profiles repositories.ProfileRepository,
	friendships repositories.FriendshipRepository,
	notifications repositories.NotificationRepository,
	log *logrus.Logger,
	timeout time.Duration,
) PostService {
	return &postService{
		posts:         posts,
		profiles:      profiles,
		friendships:   friendships,
		notifications: notifications,
		log:           log,
		timeout:       timeout,
	}
}

// Create stores a new post and notifies the author's friends. The image URL
// is required; a blank description is normalized to a placeholder. A
// recipient whose notification insert fails does not abort the post or the
// rest of the fan-out; the insert is idempotent, so retrying the whole
// fan-out is safe.
func (s *postService) Create(ctx context.Context, authorID string, req *models.CreatePostRequest) (*models.Post, error) {
	if strings.TrimSpace(req.ImageURL) == "" {
		return nil, fmt.Errorf("%w: image_url is required", models.ErrValidation)
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.profiles.GetProfile(ctx, authorID); err != nil {
		return nil, err
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		description = models.DefaultDescription
	}

	post := &models.Post{
		AuthorID:    authorID,
		ImageURL:    strings.TrimSpace(req.ImageURL),
		Description: description,
	}
	if err := s.posts.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	s.fanOut(ctx, post)
	return post, nil
}

// GetPost retrieves a single post by ID.
func (s *postService) GetPost(ctx context.Context, id string) (*models.Post, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	return s.posts.GetPostByID(ctx, id)
}

// ListByAuthor returns the author's posts, newest first.
func (s *postService) ListByAuthor(ctx context.Context, authorID string) ([]models.Post, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.profiles.GetProfile(ctx, authorID); err != nil {
		return nil, err
	}
	return s.posts.ListByAuthor(ctx, authorID)
}

// fanOut creates one new_post notification per friend of the author. The
// author never notifies themselves; per-recipient failures are logged and
// left for the next retry.
func (s *postService) fanOut(ctx context.Context, post *models.Post) {
	friendIDs, err := s.friendships.ListFriendIDs(ctx, post.AuthorID)
	if err != nil {
		s.log.WithError(err).WithField("post_id", post.ID.Hex()).
			Warn("failed to list friends for new post fan-out")
		return
	}
	for _, friendID := range friendIDs {
		if friendID == post.AuthorID {
			continue
		}
		n := models.NewPostNotification(friendID, post.AuthorID, post.ID.Hex())
		if _, err := s.notifications.Create(ctx, n); err != nil {
			s.log.WithError(err).WithFields(logrus.Fields{
				"post_id":      post.ID.Hex(),
				"recipient_id": friendID,
			}).Warn("failed to fan out new post notification")
		}
	}
}
