package repository

import (
	"context"
	"time"

	"fleetcare/internal/domain/entity"
)

// NotificationRepository defines the interface for notification data.
type NotificationRepository interface {
	// FindByIDAndUser retrieves a notification only if it belongs to the user.
	FindByIDAndUser(ctx context.Context, id uint, userID string) (*entity.Notification, error)
	// FindByUserID retrieves all notifications for a user, newest first.
	FindByUserID(ctx context.Context, userID string) ([]*entity.Notification, error)
	// FindDispatchable retrieves pending notifications whose scheduled time
	// is unset or has arrived.
	FindDispatchable(ctx context.Context, now time.Time) ([]*entity.Notification, error)
	// ExistsForReminder reports whether any notification references the
	// reminder. Backs the once-per-reminder notification guard.
	ExistsForReminder(ctx context.Context, reminderID uint) (bool, error)
	// Create creates a new notification. Returns the created ID.
	Create(ctx context.Context, notification *entity.Notification) (uint, error)
	// Update updates an existing notification.
	Update(ctx context.Context, notification *entity.Notification) error
	// MarkAllRead marks every pending/sent notification of the user read.
	MarkAllRead(ctx context.Context, userID string, now time.Time) error
	// DeleteReadOlderThan deletes read notifications created before the
	// cutoff. Non-read notifications are never pruned by age.
	DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
