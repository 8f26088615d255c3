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

type reminderRepository struct {
	db *gorm.DB
}

// NewReminderRepository creates a new instance of ReminderRepository.
func NewReminderRepository(db *gorm.DB) repository.ReminderRepository {
	return &reminderRepository{db: db}
}

// FindByID retrieves a reminder by its ID.
func (r *reminderRepository) FindByID(ctx context.Context, id uint) (*entity.Reminder, error) {
	var reminder entity.Reminder
	if err := r.db.WithContext(ctx).First(&reminder, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("reminder %d not found: %w", id, err)
		}
		return nil, fmt.Errorf("🔴 ERROR: failed to find reminder %d: %w", id, err)
	}
	return &reminder, nil
}

// FindByIDAndUser retrieves a reminder only if it belongs to the user.
func (r *reminderRepository) FindByIDAndUser(ctx context.Context, id uint, userID string) (*entity.Reminder, error) {
	var reminder entity.Reminder
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&reminder).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("reminder %d not found for user: %w", id, err)
		}
		return nil, fmt.Errorf("🔴 ERROR: failed to find reminder %d for user %s: %w", id, userID, err)
	}
	return &reminder, nil
}

// FindByUserID retrieves all reminders for a user, newest first.
func (r *reminderRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.Reminder, error) {
	var reminders []*entity.Reminder
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at desc").Find(&reminders).Error; err != nil {
		return nil, fmt.Errorf("🔴 ERROR: failed to find reminders for user %s: %w", userID, err)
	}
	return reminders, nil
}

// FindPending retrieves all pending reminders system-wide, oldest first.
func (r *reminderRepository) FindPending(ctx context.Context) ([]*entity.Reminder, error) {
	var reminders []*entity.Reminder
	err := r.db.WithContext(ctx).
		Where("status = ?", constant.ReminderPending).
		Order("created_at asc").
		Find(&reminders).Error
	if err != nil {
		return nil, fmt.Errorf("🔴 ERROR: failed to find pending reminders: %w", err)
	}
	return reminders, nil
}

// FindActiveByScheduleID retrieves the schedule's pending/sent reminders.
func (r *reminderRepository) FindActiveByScheduleID(ctx context.Context, scheduleID uint) ([]*entity.Reminder, error) {
	var reminders []*entity.Reminder
	err := r.db.WithContext(ctx).
		Where("schedule_id = ? AND status IN ?", scheduleID, []constant.ReminderStatus{constant.ReminderPending, constant.ReminderSent}).
		Find(&reminders).Error
	if err != nil {
		return nil, fmt.Errorf("🔴 ERROR: failed to find active reminders for schedule %d: %w", scheduleID, err)
	}
	return reminders, nil
}

// ExistsActive reports whether a pending or sent reminder exists for the schedule.
func (r *reminderRepository) ExistsActive(ctx context.Context, scheduleID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Reminder{}).
		Where("schedule_id = ? AND status IN ?", scheduleID, []constant.ReminderStatus{constant.ReminderPending, constant.ReminderSent}).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("🔴 ERROR: failed to count active reminders for schedule %d: %w", scheduleID, err)
	}
	return count > 0, nil
}

// Create creates a new reminder. Returns the ID of the created reminder.
func (r *reminderRepository) Create(ctx context.Context, reminder *entity.Reminder) (uint, error) {
	if err := r.db.WithContext(ctx).Create(reminder).Error; err != nil {
		return 0, fmt.Errorf("🔴 ERROR: failed to create reminder for schedule %d: %w", reminder.ScheduleID, err)
	}
	return reminder.ID, nil
}

// Update updates an existing reminder.
func (r *reminderRepository) Update(ctx context.Context, reminder *entity.Reminder) error {
	if err := r.db.WithContext(ctx).Save(reminder).Error; err != nil {
		return fmt.Errorf("🔴 ERROR: failed to update reminder %d: %w", reminder.ID, err)
	}
	return nil
}

// DeleteByScheduleID deletes all reminders of a schedule.
func (r *reminderRepository) DeleteByScheduleID(ctx context.Context, scheduleID uint) error {
	if err := r.db.WithContext(ctx).Where("schedule_id = ?", scheduleID).Delete(&entity.Reminder{}).Error; err != nil {
		return fmt.Errorf("🔴 ERROR: failed to delete reminders for schedule %d: %w", scheduleID, err)
	}
	return nil
}

// DeleteTerminalOlderThan deletes dismissed/completed reminders created before the cutoff.
func (r *reminderRepository) DeleteTerminalOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("status IN ? AND created_at < ?", []constant.ReminderStatus{constant.ReminderDismissed, constant.ReminderCompleted}, cutoff).
		Delete(&entity.Reminder{})
	if res.Error != nil {
		return 0, fmt.Errorf("🔴 ERROR: failed to prune reminders older than %v: %w", cutoff, res.Error)
	}
	return res.RowsAffected, nil
}
