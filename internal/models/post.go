package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultDescription is stored when a post is created with a blank description.
const DefaultDescription = "no description"

// Post represents an image post stored in MongoDB. Likes is the set of
// profile IDs that liked the post; it is mutated only through atomic
// $addToSet/$pull updates so concurrent likers never overwrite each other.
type Post struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	AuthorID    string             `json:"author_id" bson:"author_id"`
	ImageURL    string             `json:"image_url" bson:"image_url"`
	Description string             `json:"description" bson:"description"`
	Likes       []string           `json:"likes" bson:"likes"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

// HasLike reports whether the given profile is in the like set.
func (p *Post) HasLike(profileID string) bool {
	for _, id := range p.Likes {
		if id == profileID {
			return true
		}
	}
	return false
}

// CreatePostRequest defines the request body for creating a new post.
// The image must already be uploaded to object storage.
type CreatePostRequest struct {
	ImageURL    string `json:"image_url" validate:"required,url"`
	Description string `json:"description,omitempty" validate:"omitempty,max=2000"`
}
