package repositories

import (
	"context"
	"errors"

	"github.com/collegegram/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FriendshipRepository defines the interface for friend-edge data operations.
// Pair mutations touch both directed half-edges under one transaction; the
// symmetric invariant is never observable as broken.
type FriendshipRepository interface {
	GetEdge(ctx context.Context, userID, friendID string) (*models.Friendship, error)
	CreatePair(ctx context.Context, initiatorID, targetID string) error
	AcceptPair(ctx context.Context, userID, friendID string) error
	DeletePair(ctx context.Context, userID, friendID string) error
	ListFriendIDs(ctx context.Context, userID string) ([]string, error)
	ListFriends(ctx context.Context, userID string) ([]models.Profile, error)
}

// PostgresFriendshipRepository implements FriendshipRepository for PostgreSQL
type PostgresFriendshipRepository struct {
	db *gorm.DB
}

// NewPostgresFriendshipRepository creates a new PostgresFriendshipRepository
func NewPostgresFriendshipRepository(db *gorm.DB) *PostgresFriendshipRepository {
	return &PostgresFriendshipRepository{db: db}
}

// GetEdge retrieves the directed half-edge userID -> friendID.
func (r *PostgresFriendshipRepository) GetEdge(ctx context.Context, userID, friendID string) (*models.Friendship, error) {
	var edge models.Friendship
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND friend_id = ?", userID, friendID).
		First(&edge).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &edge, nil
}

// CreatePair inserts both half-edges of a new friendship in one transaction,
// marked as requested by the initiator. Returns ErrAlreadyFriends when any
// edge of the pair already exists.
func (r *PostgresFriendshipRepository) CreatePair(ctx context.Context, initiatorID, targetID string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&models.Friendship{}).
			Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
				initiatorID, targetID, targetID, initiatorID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return models.ErrAlreadyFriends
		}
		edges := []models.Friendship{
			{ID: uuid.New().String(), UserID: initiatorID, FriendID: targetID, RequestedBy: initiatorID, Status: models.FriendshipRequested},
			{ID: uuid.New().String(), UserID: targetID, FriendID: initiatorID, RequestedBy: initiatorID, Status: models.FriendshipRequested},
		}
		return tx.Create(&edges).Error
	})
	switch {
	case errors.Is(err, models.ErrAlreadyFriends):
		return err
	case errors.Is(err, gorm.ErrDuplicatedKey):
		// A concurrent CreatePair won the race; the unique edge index caught it.
		return models.ErrAlreadyFriends
	}
	return translateError(err)
}

// AcceptPair flips both half-edges of an existing pair to accepted.
func (r *PostgresFriendshipRepository) AcceptPair(ctx context.Context, userID, friendID string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Model(&models.Friendship{}).
			Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
				userID, friendID, friendID, userID).
			Update("status", models.FriendshipAccepted).Error
	})
	return translateError(err)
}

// DeletePair removes both half-edges in one transaction, along with the
// pair's follow_request/follow_accept notifications so that a later
// re-friend notifies afresh instead of hitting the dedup index. Deleting an
// absent pair is a no-op success.
func (r *PostgresFriendshipRepository) DeletePair(ctx context.Context, userID, friendID string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
				userID, friendID, friendID, userID).
			Delete(&models.Friendship{}).Error
		if err != nil {
			return err
		}
		relationshipKinds := []models.NotificationKind{
			models.NotificationFollowRequest,
			models.NotificationFollowAccept,
		}
		return tx.
			Where("kind IN ? AND ((recipient_id = ? AND sender_id = ?) OR (recipient_id = ? AND sender_id = ?))",
				relationshipKinds, userID, friendID, friendID, userID).
			Delete(&models.Notification{}).Error
	})
	return translateError(err)
}

// ListFriendIDs returns the IDs of everyone the user is friends with.
func (r *PostgresFriendshipRepository) ListFriendIDs(ctx context.Context, userID string) ([]string, error) {
	ids := []string{}
	err := r.db.WithContext(ctx).Model(&models.Friendship{}).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Pluck("friend_id", &ids).Error
	if err != nil {
		return nil, translateError(err)
	}
	return ids, nil
}

// ListFriends returns the profiles of everyone the user is friends with.
func (r *PostgresFriendshipRepository) ListFriends(ctx context.Context, userID string) ([]models.Profile, error) {
	profiles := []models.Profile{}
	sub := r.db.Model(&models.Friendship{}).Select("friend_id").Where("user_id = ?", userID)
	err := r.db.WithContext(ctx).Where("id IN (?)", sub).Order("created_at ASC").Find(&profiles).Error
	if err != nil {
		return nil, translateError(err)
	}
	return profiles, nil
}
