package repositories

import (
	"context"

	"github.com/collegegram/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NotificationRepository defines the interface for notification operations
type NotificationRepository interface {
	Create(ctx context.Context, n *models.Notification) (bool, error)
	ListByRecipient(ctx context.Context, recipientID string) ([]models.Notification, error)
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	UnreadCount(ctx context.Context, recipientID string) (int64, error)
}

type postgresNotificationRepository struct {
	db *gorm.DB
}

// NewPostgresNotificationRepository creates a NotificationRepository backed by PostgreSQL
func NewPostgresNotificationRepository(db *gorm.DB) NotificationRepository {
	return &postgresNotificationRepository{db: db}
}

// Create inserts a notification. A duplicate of an existing (recipient,
// sender, kind, subject) entry is silently skipped, which makes fan-out
// retries idempotent per recipient. Reports whether a row was written.
func (r *postgresNotificationRepository) Create(ctx context.Context, n *models.Notification) (bool, error) {
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(n)
	if res.Error != nil {
		return false, translateError(res.Error)
	}
	return res.RowsAffected > 0, nil
}

// ListByRecipient returns the recipient's notifications, newest first.
func (r *postgresNotificationRepository) ListByRecipient(ctx context.Context, recipientID string) ([]models.Notification, error) {
	notifications := []models.Notification{}
	err := r.db.WithContext(ctx).
		Where("recipient_id = ?", recipientID).
		Order("created_at DESC, id DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, translateError(err)
	}
	return notifications, nil
}

// MarkRead flips a notification to read. Already-read and absent IDs are
// no-op successes. Suggestion entries have no read state and are skipped.
func (r *postgresNotificationRepository) MarkRead(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Model(&models.Notification{}).
		Where("id = ? AND kind <> ?", id, models.NotificationSuggestion).
		Update("is_read", true).Error
	return translateError(err)
}

// Delete removes a notification unconditionally; an absent ID is a no-op.
func (r *postgresNotificationRepository) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Delete(&models.Notification{}, "id = ?", id).Error
	return translateError(err)
}

// UnreadCount counts unread event notifications. Suggestions are excluded
// since they carry no read state.
func (r *postgresNotificationRepository) UnreadCount(ctx context.Context, recipientID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = ? AND kind <> ?", recipientID, false, models.NotificationSuggestion).
		Count(&count).Error
	if err != nil {
		return 0, translateError(err)
	}
	return count, nil
}
