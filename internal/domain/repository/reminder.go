package repository

import (
	"context"
	"time"

	"fleetcare/internal/domain/entity"
)

// ReminderRepository defines the interface for reminder data operations.
type ReminderRepository interface {
	// FindByID retrieves a reminder by its ID.
	FindByID(ctx context.Context, id uint) (*entity.Reminder, error)
	// FindByIDAndUser retrieves a reminder only if it belongs to the user.
	FindByIDAndUser(ctx context.Context, id uint, userID string) (*entity.Reminder, error)
	// FindByUserID retrieves all reminders for a user, newest first.
	FindByUserID(ctx context.Context, userID string) ([]*entity.Reminder, error)
	// FindPending retrieves all pending reminders system-wide, oldest first.
	FindPending(ctx context.Context) ([]*entity.Reminder, error)
	// FindActiveByScheduleID retrieves the schedule's pending/sent reminders.
	FindActiveByScheduleID(ctx context.Context, scheduleID uint) ([]*entity.Reminder, error)
	// ExistsActive reports whether a pending or sent reminder exists for the
	// schedule. Backs the at-most-one-outstanding-reminder guard.
	ExistsActive(ctx context.Context, scheduleID uint) (bool, error)
	// Create creates a new reminder. Returns the ID of the created reminder.
	Create(ctx context.Context, reminder *entity.Reminder) (uint, error)
	// Update updates an existing reminder.
	Update(ctx context.Context, reminder *entity.Reminder) error
	// DeleteByScheduleID deletes all reminders of a schedule (cascade).
	DeleteByScheduleID(ctx context.Context, scheduleID uint) error
	// DeleteTerminalOlderThan deletes dismissed/completed reminders created
	// before the cutoff. Pending/sent reminders are never touched.
	DeleteTerminalOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
