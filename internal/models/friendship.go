package models

import "time"

// Friendship status values. A pair starts as "requested" when one side
// initiates and becomes "accepted" when the other side reciprocates.
// The friendship itself is effective as soon as both half-edges exist.
const (
	FriendshipRequested = "requested"
	FriendshipAccepted  = "accepted"
)

// Friendship is one directed half of the symmetric friend relation.
// Both halves of a pair are always written and deleted inside a single
// transaction, so a reader never observes the edge on one side only.
type Friendship struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	UserID      string    `json:"user_id" gorm:"size:128;index;uniqueIndex:idx_user_friend"`
	FriendID    string    `json:"friend_id" gorm:"size:128;index;uniqueIndex:idx_user_friend"`
	RequestedBy string    `json:"requested_by" gorm:"size:128"`
	Status      string    `json:"status" gorm:"size:16;default:'requested'"`
	CreatedAt   time.Time `json:"created_at"`
}
