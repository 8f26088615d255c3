package service

import (
	"context"

	"fleetcare/internal/application/dto"
	"fleetcare/internal/domain/constant"
	"fleetcare/internal/domain/entity"
)

// ChannelProvider attempts delivery of a notification over one channel.
// Implementations live in infrastructure (LINE push, SMTP, ...); the in-app
// channel needs no provider and is satisfied immediately.
type ChannelProvider interface {
	Send(ctx context.Context, notification *entity.Notification) error
}

// NotificationService defines the interface for notification business logic.
type NotificationService interface {
	// CreateFromReminder builds a pending channel-addressed notification
	// from an existing reminder.
	CreateFromReminder(ctx context.Context, reminderID uint, channel constant.Channel) (*dto.NotificationResponse, error)
	// CreateForPendingReminders builds notifications for every pending
	// reminder that has none yet: in-app always, push additionally when a
	// push provider is registered. Returns the number of reminders notified.
	CreateForPendingReminders(ctx context.Context) (int, error)
	// Create builds a pending notification directly, without a reminder.
	Create(ctx context.Context, req dto.CreateNotificationRequest) (*dto.NotificationResponse, error)
	// DispatchPending attempts delivery of every pending notification whose
	// scheduled time is unset or has arrived. One failure never blocks the
	// rest of the batch. Returns the number delivered.
	DispatchPending(ctx context.Context) (int, error)
	// MarkRead finalizes a pending/sent notification as read.
	MarkRead(ctx context.Context, notificationID uint, userID string) (*dto.NotificationResponse, error)
	// MarkAllRead finalizes every pending/sent notification of the user.
	MarkAllRead(ctx context.Context, userID string) error
	// ListByUser retrieves all notifications of a user, newest first.
	ListByUser(ctx context.Context, userID string) ([]dto.NotificationResponse, error)
	// PruneOld deletes read notifications older than daysOld. Non-read
	// notifications are never pruned by age.
	PruneOld(ctx context.Context, daysOld int) (int64, error)
}
