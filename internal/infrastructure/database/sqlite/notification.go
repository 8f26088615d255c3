package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fleetcare/internal/domain/constant"
	"fleetcare/internal/domain/entity"
	"fleetcare/internal/domain/repository"

	"gorm.io/gorm"
)

type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new instance of NotificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

// FindByIDAndUser retrieves a notification only if it belongs to the user.
func (r *notificationRepository) FindByIDAndUser(ctx context.Context, id uint, userID string) (*entity.Notification, error) {
	var notification entity.Notification
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&notification).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("notification %d not found for user: %w", id, err)
		}
		return nil, fmt.Errorf("🔴 ERROR: failed to find notification %d for user %s: %w", id, userID, err)
	}
	return &notification, nil
}

// FindByUserID retrieves all notifications for a user, newest first.
func (r *notificationRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.Notification, error) {
	var notifications []*entity.Notification
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at desc").Find(&notifications).Error; err != nil {
		return nil, fmt.Errorf("🔴 ERROR: failed to find notifications for user %s: %w", userID, err)
	}
	return notifications, nil
}

// FindDispatchable retrieves pending notifications whose scheduled time is unset or has arrived.
func (r *notificationRepository) FindDispatchable(ctx context.Context, now time.Time) ([]*entity.Notification, error) {
	var notifications []*entity.Notification
	err := r.db.WithContext(ctx).
		Where("status = ? AND (scheduled_at IS NULL OR scheduled_at <= ?)", constant.NotificationPending, now).
		Order("created_at asc").
		Find(&notifications).Error
	if err != nil {
		return nil, fmt.Errorf("🔴 ERROR: failed to find dispatchable notifications: %w", err)
	}
	return notifications, nil
}

// ExistsForReminder reports whether any notification references the reminder.
func (r *notificationRepository) ExistsForReminder(ctx context.Context, reminderID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Notification{}).
		Where("reminder_id = ?", reminderID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("🔴 ERROR: failed to count notifications for reminder %d: %w", reminderID, err)
	}
	return count > 0, nil
}

// Create creates a new notification. Returns the created ID.
func (r *notificationRepository) Create(ctx context.Context, notification *entity.Notification) (uint, error) {
	if err := r.db.WithContext(ctx).Create(notification).Error; err != nil {
		return 0, fmt.Errorf("🔴 ERROR: failed to create notification for user %s: %w", notification.UserID, err)
	}
	return notification.ID, nil
}

// Update updates an existing notification.
func (r *notificationRepository) Update(ctx context.Context, notification *entity.Notification) error {
	if err := r.db.WithContext(ctx).Save(notification).Error; err != nil {
		return fmt.Errorf("🔴 ERROR: failed to update notification %d: %w", notification.ID, err)
	}
	return nil
}

// MarkAllRead marks every pending/sent notification of the user read.
func (r *notificationRepository) MarkAllRead(ctx context.Context, userID string, now time.Time) error {
	err := r.db.WithContext(ctx).Model(&entity.Notification{}).
		Where("user_id = ? AND status IN ?", userID, []constant.NotificationStatus{constant.NotificationPending, constant.NotificationSent}).
		Updates(map[string]interface{}{"status": constant.NotificationRead, "read_at": now}).Error
	if err != nil {
		return fmt.Errorf("🔴 ERROR: failed to mark notifications read for user %s: %w", userID, err)
	}
	return nil
}

// DeleteReadOlderThan deletes read notifications created before the cutoff.
func (r *notificationRepository) DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("status = ? AND created_at < ?", constant.NotificationRead, cutoff).
		Delete(&entity.Notification{})
	if res.Error != nil {
		return 0, fmt.Errorf("🔴 ERROR: failed to prune notifications older than %v: %w", cutoff, res.Error)
	}
	return res.RowsAffected, nil
}
