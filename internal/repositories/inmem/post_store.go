// Package inmem provides in-memory stores used as test doubles for the
// MongoDB-backed repositories.
package inmem

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/collegegram/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostStore is an in-memory PostRepository.
type PostStore struct {
	posts map[string]models.Post
	mutex sync.RWMutex

	// Now is the clock used for creation timestamps; tests override it to
	// control feed ordering.
	Now func() time.Time
}

// NewPostStore creates an empty PostStore.
func NewPostStore() *PostStore {
	return &PostStore{
		posts: map[string]models.Post{},
		Now:   time.Now,
	}
}

func (s *PostStore) CreatePost(ctx context.Context, post *models.Post) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	post.ID = primitive.NewObjectID()
	post.CreatedAt = s.Now()
	post.UpdatedAt = post.CreatedAt
	if post.Likes == nil {
		post.Likes = []string{}
	}
	s.posts[post.ID.Hex()] = clone(*post)
	return nil
}

func (s *PostStore) GetPostByID(ctx context.Context, id string) (*models.Post, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	post, ok := s.posts[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	post = clone(post)
	return &post, nil
}

func (s *PostStore) ListByAuthor(ctx context.Context, authorID string) ([]models.Post, error) {
	return s.list(func(p models.Post) bool { return p.AuthorID == authorID })
}

func (s *PostStore) ListByAuthors(ctx context.Context, authorIDs []string) ([]models.Post, error) {
	if len(authorIDs) == 0 {
		return []models.Post{}, nil
	}
	allowed := map[string]bool{}
	for _, id := range authorIDs {
		allowed[id] = true
	}
	return s.list(func(p models.Post) bool { return allowed[p.AuthorID] })
}

func (s *PostStore) ListAll(ctx context.Context) ([]models.Post, error) {
	return s.list(func(models.Post) bool { return true })
}

func (s *PostStore) AddLike(ctx context.Context, postID, profileID string) (bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	post, ok := s.posts[postID]
	if !ok {
		return false, models.ErrNotFound
	}
	if post.HasLike(profileID) {
		return false, nil
	}
	post.Likes = append(append([]string{}, post.Likes...), profileID)
	s.posts[postID] = post
	return true, nil
}

func (s *PostStore) RemoveLike(ctx context.Context, postID, profileID string) (bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	post, ok := s.posts[postID]
	if !ok {
		return false, models.ErrNotFound
	}
	likes := make([]string, 0, len(post.Likes))
	removed := false
	for _, id := range post.Likes {
		if id == profileID {
			removed = true
			continue
		}
		likes = append(likes, id)
	}
	post.Likes = likes
	s.posts[postID] = post
	return removed, nil
}

// list returns matching posts sorted newest first, ties broken by ID
// descending to match the MongoDB sort.
func (s *PostStore) list(match func(models.Post) bool) ([]models.Post, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	posts := []models.Post{}
	for _, p := range s.posts {
		if match(p) {
			posts = append(posts, clone(p))
		}
	}
	sort.Slice(posts, func(i, j int) bool {
		if !posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].CreatedAt.After(posts[j].CreatedAt)
		}
		return posts[i].ID.Hex() > posts[j].ID.Hex()
	})
	return posts, nil
}

func clone(p models.Post) models.Post {
	p.Likes = append([]string{}, p.Likes...)
	return p
}
