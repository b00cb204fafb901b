package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NotificationKind enumerates the notification variants.
type NotificationKind string

const (
	NotificationLike          NotificationKind = "like"
	NotificationFollowRequest NotificationKind = "follow_request"
	NotificationFollowAccept  NotificationKind = "follow_accept"
	NotificationNewPost       NotificationKind = "new_post"
	NotificationSuggestion    NotificationKind = "suggestion"
)

// Notification represents a user notification (PostgreSQL). SubjectPostID is
// set only for the like and new_post kinds and is an empty string otherwise,
// never NULL, so the dedup index compares it; the per-kind constructors below
// are the only way the rest of the codebase builds these records, which keeps
// the payload shape consistent per kind. The unique index over (recipient,
// sender, kind, subject) makes re-inserting the same notification a no-op,
// so a cut-off fan-out can be retried wholesale.
type Notification struct {
	ID            string           `json:"id" gorm:"primaryKey;size:36"`
	RecipientID   string           `json:"recipient_id" gorm:"size:128;index;uniqueIndex:idx_notif_dedup"`
	SenderID      string           `json:"sender_id" gorm:"size:128;uniqueIndex:idx_notif_dedup"`
	Kind          NotificationKind `json:"kind" gorm:"size:20;uniqueIndex:idx_notif_dedup"`
	SubjectPostID string           `json:"subject_post_id,omitempty" gorm:"size:64;not null;uniqueIndex:idx_notif_dedup"`
	IsRead        bool             `json:"is_read" gorm:"default:false;index"`
	CreatedAt     time.Time        `json:"created_at" gorm:"index"`
}

func newNotification(recipientID, senderID string, kind NotificationKind, subjectPostID string) *Notification {
	return &Notification{
		ID:            uuid.New().String(),
		RecipientID:   recipientID,
		SenderID:      senderID,
		Kind:          kind,
		SubjectPostID: subjectPostID,
		CreatedAt:     time.Now(),
	}
}

// NewLikeNotification tells the post author that sender liked their post.
func NewLikeNotification(authorID, senderID, postID string) *Notification {
	return newNotification(authorID, senderID, NotificationLike, postID)
}

// NewFollowRequestNotification tells recipient that sender wants to be friends.
func NewFollowRequestNotification(recipientID, senderID string) *Notification {
	return newNotification(recipientID, senderID, NotificationFollowRequest, "")
}

// NewFollowAcceptNotification tells the original requester that sender
// accepted their friend request.
func NewFollowAcceptNotification(recipientID, senderID string) *Notification {
	return newNotification(recipientID, senderID, NotificationFollowAccept, "")
}

// NewPostNotification tells a friend of the author that a new post exists.
func NewPostNotification(friendID, authorID, postID string) *Notification {
	return newNotification(friendID, authorID, NotificationNewPost, postID)
}

// NewSuggestionNotification is a system-generated entry recommending a
// profile. The sender is the suggested profile, not an actor; suggestion
// entries have no read transition and are removed only by dismissal.
func NewSuggestionNotification(recipientID, suggestedID string) *Notification {
	return newNotification(recipientID, suggestedID, NotificationSuggestion, "")
}

// RelativeAge formats how long ago a notification was created, using integer
// floor division at each threshold: seconds under a minute, minutes under an
// hour, hours under a day, days otherwise.
func RelativeAge(now, createdAt time.Time) string {
	secs := int64(now.Sub(createdAt).Seconds())
	if secs < 0 {
		secs = 0
	}
	switch {
	case secs < 60:
		return fmt.Sprintf("%ds ago", secs)
	case secs < 3600:
		return fmt.Sprintf("%dm ago", secs/60)
	case secs < 86400:
		return fmt.Sprintf("%dh ago", secs/3600)
	default:
		return fmt.Sprintf("%dd ago", secs/86400)
	}
}
