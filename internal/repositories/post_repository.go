package repositories

import (
	"context"
	"time"

	"github.com/collegegram/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PostRepository defines the interface for post data operations. Like-set
// mutations are single atomic server-side updates, never a blind overwrite of
// the whole set.
type PostRepository interface {
	CreatePost(ctx context.Context, post *models.Post) error
	GetPostByID(ctx context.Context, id string) (*models.Post, error)
	ListByAuthor(ctx context.Context, authorID string) ([]models.Post, error)
	ListByAuthors(ctx context.Context, authorIDs []string) ([]models.Post, error)
	ListAll(ctx context.Context) ([]models.Post, error)
	AddLike(ctx context.Context, postID, profileID string) (bool, error)
	RemoveLike(ctx context.Context, postID, profileID string) (bool, error)
}

// MongoPostRepository implements PostRepository for MongoDB
type MongoPostRepository struct {
	collection *mongo.Collection
}

// NewMongoPostRepository creates a new MongoPostRepository
func NewMongoPostRepository(db *mongo.Database) *MongoPostRepository {
	return &MongoPostRepository{collection: db.Collection("posts")}
}

// CreatePost creates a new post with server-side timestamps.
func (r *MongoPostRepository) CreatePost(ctx context.Context, post *models.Post) error {
	post.ID = primitive.NewObjectID()
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt
	if post.Likes == nil {
		post.Likes = []string{}
	}
	_, err := r.collection.InsertOne(ctx, post)
	return translateError(err)
}

// GetPostByID retrieves a post by ID.
func (r *MongoPostRepository) GetPostByID(ctx context.Context, id string) (*models.Post, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrNotFound
	}
	var post models.Post
	if err := r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&post); err != nil {
		return nil, translateError(err)
	}
	return &post, nil
}

// ListByAuthor retrieves an author's posts, newest first.
func (r *MongoPostRepository) ListByAuthor(ctx context.Context, authorID string) ([]models.Post, error) {
	return r.find(ctx, bson.M{"author_id": authorID})
}

// ListByAuthors retrieves posts by any of the given authors, newest first.
func (r *MongoPostRepository) ListByAuthors(ctx context.Context, authorIDs []string) ([]models.Post, error) {
	if len(authorIDs) == 0 {
		return []models.Post{}, nil
	}
	return r.find(ctx, bson.M{"author_id": bson.M{"$in": authorIDs}})
}

// ListAll retrieves every post, newest first.
func (r *MongoPostRepository) ListAll(ctx context.Context) ([]models.Post, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoPostRepository) find(ctx context.Context, filter bson.M) ([]models.Post, error) {
	posts := []models.Post{}
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, translateError(err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, &posts); err != nil {
		return nil, translateError(err)
	}
	return posts, nil
}

// AddLike inserts profileID into the post's like set ($addToSet). Reports
// whether the set actually grew; liking twice is a no-op success.
func (r *MongoPostRepository) AddLike(ctx context.Context, postID, profileID string) (bool, error) {
	objID, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return false, models.ErrNotFound
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID},
		bson.M{"$addToSet": bson.M{"likes": profileID}})
	if err != nil {
		return false, translateError(err)
	}
	if res.MatchedCount == 0 {
		return false, models.ErrNotFound
	}
	return res.ModifiedCount > 0, nil
}

// RemoveLike removes profileID from the post's like set ($pull). Removing an
// absent entry is a no-op success.
func (r *MongoPostRepository) RemoveLike(ctx context.Context, postID, profileID string) (bool, error) {
	objID, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return false, models.ErrNotFound
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID},
		bson.M{"$pull": bson.M{"likes": profileID}})
	if err != nil {
		return false, translateError(err)
	}
	if res.MatchedCount == 0 {
		return false, models.ErrNotFound
	}
	return res.ModifiedCount > 0, nil
}
