package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fleetcare/internal/application/dto"
	"fleetcare/internal/domain/constant"
	"fleetcare/internal/domain/entity"
	"fleetcare/internal/domain/interval"
	"fleetcare/internal/domain/repository"
	appErrors "fleetcare/internal/pkg/errors"
	"fleetcare/internal/pkg/logger"

	"github.com/zoobzio/clockz"
)

// DefaultReminderRetentionDays is the retention window for terminal reminders.
const DefaultReminderRetentionDays = 90

type reminderService struct {
	reminderRepo repository.ReminderRepository
	scheduleRepo repository.ScheduleRepository
	vehicleRepo  repository.VehicleRepository
	clock        clockz.Clock
	log          logger.Logger
}

// NewReminderService creates a new instance of ReminderService implementation.
func NewReminderService(
	reminderRepo repository.ReminderRepository,
	scheduleRepo repository.ScheduleRepository,
	vehicleRepo repository.VehicleRepository,
	clock clockz.Clock,
	log logger.Logger,
) ReminderService {
	if clock == nil {
		clock = clockz.RealClock
	}
	return &reminderService{
		reminderRepo: reminderRepo,
		scheduleRepo: scheduleRepo,
		vehicleRepo:  vehicleRepo,
		clock:        clock,
		log:          log,
	}
}

// ScanAndCreateReminders evaluates every active schedule system-wide.
// The scan is serialized by the daily loop; the per-schedule ExistsActive
// check is the idempotency guard that keeps repeated scans harmless.
func (s *reminderService) ScanAndCreateReminders(ctx context.Context) (int, error) {
	schedules, err := s.scheduleRepo.FindAllActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	created := 0
	for _, schedule := range schedules {
		exists, err := s.reminderRepo.ExistsActive(ctx, schedule.ID)
		if err != nil {
			s.log.Error(fmt.Sprintf("Failed to check outstanding reminders for schedule %d", schedule.ID), err)
			continue
		}
		if exists {
			continue
		}

		vehicle, err := s.vehicleRepo.FindByID(ctx, schedule.VehicleID)
		if err != nil {
			s.log.Error(fmt.Sprintf("Failed to load vehicle %d for schedule %d during scan", schedule.VehicleID, schedule.ID), err)
			continue
		}

		now := s.clock.Now()
		overdue := interval.IsOverdue(schedule, vehicle.CurrentMileage, vehicle.CurrentHours, now)
		upcoming := interval.IsUpcoming(schedule, vehicle.CurrentMileage, vehicle.CurrentHours, now)
		if !overdue && !upcoming {
			continue
		}

		reminder := &entity.Reminder{
			ScheduleID:    schedule.ID,
			UserID:        vehicle.OwnerID,
			Status:        constant.ReminderPending,
			Type:          interval.Classify(schedule, vehicle.CurrentMileage, vehicle.CurrentHours, now),
			Message:       buildReminderMessage(schedule, vehicle, overdue, now),
			ScheduledDate: now,
		}
		if _, err := s.reminderRepo.Create(ctx, reminder); err != nil {
			s.log.Error(fmt.Sprintf("Failed to create reminder for schedule %d", schedule.ID), err)
			continue
		}
		created++
		s.log.Info(fmt.Sprintf("Created %s reminder %d for schedule %d (%s)", reminder.Type, reminder.ID, schedule.ID, schedule.TaskName))
	}
	return created, nil
}

// buildReminderMessage formats the human-readable reminder text. Overdue
// messages omit remaining amounts; upcoming messages list each triggered
// dimension's remaining amount joined by "or".
func buildReminderMessage(schedule *entity.MaintenanceSchedule, vehicle *entity.Vehicle, overdue bool, now time.Time) string {
	if overdue {
		return fmt.Sprintf("%s is overdue", schedule.TaskName)
	}

	rem := interval.ComputeRemaining(schedule, vehicle.CurrentMileage, vehicle.CurrentHours, now)
	var parts []string
	for _, dim := range interval.TriggeredDimensions(schedule, vehicle.CurrentMileage, vehicle.CurrentHours, now) {
		switch dim {
		case constant.ReminderTypeTime:
			if rem.Days != nil {
				parts = append(parts, fmt.Sprintf("%d days", *rem.Days))
			}
		case constant.ReminderTypeMileage:
			if rem.Distance != nil {
				parts = append(parts, fmt.Sprintf("%.0f km", *rem.Distance))
			}
		case constant.ReminderTypeHours:
			if rem.Hours != nil {
				parts = append(parts, fmt.Sprintf("%.0f engine-hours", *rem.Hours))
			}
		}
	}
	return fmt.Sprintf("%s due in %s", schedule.TaskName, strings.Join(parts, " or "))
}

// transition loads the user's reminder and moves it to the target status.
// Terminal reminders reject any further transition.
func (s *reminderService) transition(ctx context.Context, reminderID uint, userID string, target constant.ReminderStatus) (*dto.ReminderResponse, error) {
	reminder, err := s.reminderRepo.FindByIDAndUser(ctx, reminderID, userID)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, appErrors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	if reminder.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: reminder %d is already %s", appErrors.ErrValidation, reminderID, reminder.Status)
	}

	now := s.clock.Now()
	reminder.Status = target
	if target == constant.ReminderDismissed {
		reminder.DismissedAt = &now
	}
	if err := s.reminderRepo.Update(ctx, reminder); err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	resp := dto.ToReminderResponse(reminder)
	return &resp, nil
}

// Dismiss transitions a pending/sent reminder to dismissed.
func (s *reminderService) Dismiss(ctx context.Context, reminderID uint, userID string) (*dto.ReminderResponse, error) {
	return s.transition(ctx, reminderID, userID, constant.ReminderDismissed)
}

// Complete transitions a pending/sent reminder to completed.
func (s *reminderService) Complete(ctx context.Context, reminderID uint, userID string) (*dto.ReminderResponse, error) {
	return s.transition(ctx, reminderID, userID, constant.ReminderCompleted)
}

// MarkSent transitions a pending reminder to sent and stamps the time.
func (s *reminderService) MarkSent(ctx context.Context, reminderID uint) error {
	reminder, err := s.reminderRepo.FindByID(ctx, reminderID)
	if err != nil {
		if isRecordNotFound(err) {
			return appErrors.ErrNotFound
		}
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	if reminder.Status != constant.ReminderPending {
		return fmt.Errorf("%w: reminder %d is %s, not pending", appErrors.ErrValidation, reminderID, reminder.Status)
	}

	now := s.clock.Now()
	reminder.Status = constant.ReminderSent
	reminder.SentAt = &now
	if err := s.reminderRepo.Update(ctx, reminder); err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return nil
}

// ListByUser retrieves all reminders of a user, newest first.
func (s *reminderService) ListByUser(ctx context.Context, userID string) ([]dto.ReminderResponse, error) {
	reminders, err := s.reminderRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return dto.ToReminderResponseList(reminders), nil
}

// PruneOld deletes dismissed/completed reminders older than daysOld.
func (s *reminderService) PruneOld(ctx context.Context, daysOld int) (int64, error) {
	if daysOld <= 0 {
		daysOld = DefaultReminderRetentionDays
	}
	cutoff := s.clock.Now().AddDate(0, 0, -daysOld)
	deleted, err := s.reminderRepo.DeleteTerminalOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	if deleted > 0 {
		s.log.Info(fmt.Sprintf("Pruned %d terminal reminders older than %d days", deleted, daysOld))
	}
	return deleted, nil
}
