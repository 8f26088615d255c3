package service

import (
	"context"

	"fleetcare/internal/application/dto"
)

// ReminderService defines the interface for reminder business logic.
type ReminderService interface {
	// ScanAndCreateReminders evaluates every active schedule system-wide and
	// creates at most one outstanding reminder per schedule. Returns the
	// number of reminders created.
	ScanAndCreateReminders(ctx context.Context) (int, error)
	// Dismiss transitions a pending/sent reminder to dismissed.
	Dismiss(ctx context.Context, reminderID uint, userID string) (*dto.ReminderResponse, error)
	// Complete transitions a pending/sent reminder to completed. Used when
	// the underlying schedule is completed while a reminder was outstanding.
	Complete(ctx context.Context, reminderID uint, userID string) (*dto.ReminderResponse, error)
	// MarkSent transitions a pending reminder to sent and stamps the time.
	MarkSent(ctx context.Context, reminderID uint) error
	// ListByUser retrieves all reminders of a user, newest first.
	ListByUser(ctx context.Context, userID string) ([]dto.ReminderResponse, error)
	// PruneOld deletes dismissed/completed reminders older than daysOld.
	// Pending/sent reminders are never pruned regardless of age.
	PruneOld(ctx context.Context, daysOld int) (int64, error)
}
