package services

import (
	"context"
	"sort"
	"time"

	"github.com/collegegram/backend/internal/models"
	"github.com/collegegram/backend/internal/repositories"
)

// FeedMode selects which posts make up the feed.
type FeedMode string

const (
	// FeedModeFriends shows posts authored by the viewer's friends.
	FeedModeFriends FeedMode = "friends"
	// FeedModeAll shows every post.
	FeedModeAll FeedMode = "all"
)

// FeedPolicy configures feed assembly. FallbackToAll widens an empty
// friends-only feed to all posts, which is what the product shows a new user
// with no friends yet.
type FeedPolicy struct {
	Mode          FeedMode
	FallbackToAll bool
}

// FeedItem is a post joined with a snapshot of its author's current name and
// avatar. The join happens at read time so a profile edit shows up
// immediately on old posts.
type FeedItem struct {
	models.Post
	AuthorName      *string `json:"author_name"`
	AuthorAvatarURL *string `json:"author_avatar_url"`
}

// FeedService assembles the viewer's feed.
type FeedService interface {
	Assemble(ctx context.Context, viewerID string) ([]FeedItem, error)
}

type feedService struct {
	posts       repositories.PostRepository
	profiles    repositories.ProfileRepository
	friendships repositories.FriendshipRepository
	policy      FeedPolicy
	timeout     time.Duration
}

// NewFeedService creates a new FeedService
func NewFeedService(
	posts repositories.PostRepository,
	profiles repositories.ProfileRepository,
	friendships repositories.FriendshipRepository,
	policy FeedPolicy,
	timeout time.Duration,
) FeedService {
	if policy.Mode == "" {
		policy.Mode = FeedModeFriends
	}
	return &feedService{
		posts:       posts,
		profiles:    profiles,
		friendships: friendships,
		policy:      policy,
		timeout:     timeout,
	}
}

// Assemble returns the viewer's feed ordered newest first, ties broken by
// post ID. An empty feed is a valid result, distinct from a fetch failure.
func (s *feedService) Assemble(ctx context.Context, viewerID string) ([]FeedItem, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.profiles.GetProfile(ctx, viewerID); err != nil {
		return nil, err
	}

	var posts []models.Post
	var err error
	switch s.policy.Mode {
	case FeedModeAll:
		posts, err = s.posts.ListAll(ctx)
	default:
		var friendIDs []string
		friendIDs, err = s.friendships.ListFriendIDs(ctx, viewerID)
		if err != nil {
			return nil, err
		}
		posts, err = s.posts.ListByAuthors(ctx, friendIDs)
		if err == nil && len(posts) == 0 && s.policy.FallbackToAll {
			posts, err = s.posts.ListAll(ctx)
		}
	}
	if err != nil {
		return nil, err
	}

	sort.SliceStable(posts, func(i, j int) bool {
		if !posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].CreatedAt.After(posts[j].CreatedAt)
		}
		return posts[i].ID.Hex() > posts[j].ID.Hex()
	})

	return s.enrich(ctx, posts)
}

// enrich attaches the author snapshot to each post.
func (s *feedService) enrich(ctx context.Context, posts []models.Post) ([]FeedItem, error) {
	authorIDs := make([]string, 0, len(posts))
	seen := map[string]bool{}
	for _, p := range posts {
		if !seen[p.AuthorID] {
			seen[p.AuthorID] = true
			authorIDs = append(authorIDs, p.AuthorID)
		}
	}
	authors, err := s.profiles.GetProfiles(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	authorMap := make(map[string]models.Profile, len(authors))
	for _, a := range authors {
		authorMap[a.ID] = a
	}

	items := make([]FeedItem, len(posts))
	for i, p := range posts {
		items[i] = FeedItem{Post: p}
		if author, ok := authorMap[p.AuthorID]; ok {
			items[i].AuthorName = author.FullName
			items[i].AuthorAvatarURL = author.AvatarURL
		}
	}
	return items, nil
}
