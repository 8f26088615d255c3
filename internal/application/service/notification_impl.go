package service

import (
	"context"
	"fmt"

	"fleetcare/internal/application/dto"
	"fleetcare/internal/domain/constant"
	"fleetcare/internal/domain/entity"
	"fleetcare/internal/domain/interval"
	"fleetcare/internal/domain/repository"
	appErrors "fleetcare/internal/pkg/errors"
	"fleetcare/internal/pkg/logger"

	"github.com/zoobzio/clockz"
)

// DefaultNotificationRetentionDays is the retention window for read notifications.
const DefaultNotificationRetentionDays = 30

// notificationTypeMaintenance tags notifications derived from reminders.
const notificationTypeMaintenance = "maintenance"

type notificationService struct {
	notificationRepo repository.NotificationRepository
	reminderRepo     repository.ReminderRepository
	scheduleRepo     repository.ScheduleRepository
	vehicleRepo      repository.VehicleRepository
	providers        map[constant.Channel]ChannelProvider
	clock            clockz.Clock
	log              logger.Logger
}

// NewNotificationService creates a new instance of NotificationService
// implementation. providers maps channels to their delivery collaborators;
// the in-app channel needs no entry.
func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	reminderRepo repository.ReminderRepository,
	scheduleRepo repository.ScheduleRepository,
	vehicleRepo repository.VehicleRepository,
	providers map[constant.Channel]ChannelProvider,
	clock clockz.Clock,
	log logger.Logger,
) NotificationService {
	if clock == nil {
		clock = clockz.RealClock
	}
	if providers == nil {
		providers = map[constant.Channel]ChannelProvider{}
	}
	return &notificationService{
		notificationRepo: notificationRepo,
		reminderRepo:     reminderRepo,
		scheduleRepo:     scheduleRepo,
		vehicleRepo:      vehicleRepo,
		providers:        providers,
		clock:            clock,
		log:              log,
	}
}

// CreateFromReminder builds a pending notification from a reminder. The
// title is informational only: currently-overdue schedules get "Reminder",
// everything else "Due Soon".
func (s *notificationService) CreateFromReminder(ctx context.Context, reminderID uint, channel constant.Channel) (*dto.NotificationResponse, error) {
	reminder, err := s.reminderRepo.FindByID(ctx, reminderID)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, appErrors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	schedule, err := s.scheduleRepo.FindByID(ctx, reminder.ScheduleID)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, appErrors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	vehicle, err := s.vehicleRepo.FindByID(ctx, schedule.VehicleID)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, appErrors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	title := fmt.Sprintf("%s Due Soon", schedule.TaskName)
	if interval.IsOverdue(schedule, vehicle.CurrentMileage, vehicle.CurrentHours, s.clock.Now()) {
		title = fmt.Sprintf("%s Reminder", schedule.TaskName)
	}

	notification := &entity.Notification{
		UserID:     reminder.UserID,
		ReminderID: &reminder.ID,
		Type:       notificationTypeMaintenance,
		Channel:    channel,
		Title:      title,
		Message:    reminder.Message,
		ActionURL:  fmt.Sprintf("/schedules/%d", schedule.ID),
		Status:     constant.NotificationPending,
	}
	if _, err := s.notificationRepo.Create(ctx, notification); err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Debug(fmt.Sprintf("Created notification %d from reminder %d on channel %s", notification.ID, reminder.ID, channel))
	resp := dto.ToNotificationResponse(notification)
	return &resp, nil
}

// CreateForPendingReminders builds notifications for pending reminders that
// have none yet. Each reminder gets an in-app notification, plus a push one
// when a push provider is registered. A failing reminder is logged and the
// rest of the batch continues.
func (s *notificationService) CreateForPendingReminders(ctx context.Context) (int, error) {
	reminders, err := s.reminderRepo.FindPending(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	channels := []constant.Channel{constant.ChannelInApp}
	if _, ok := s.providers[constant.ChannelPush]; ok {
		channels = append(channels, constant.ChannelPush)
	}

	notified := 0
	for _, reminder := range reminders {
		exists, err := s.notificationRepo.ExistsForReminder(ctx, reminder.ID)
		if err != nil {
			s.log.Error(fmt.Sprintf("Failed to check notifications for reminder %d", reminder.ID), err)
			continue
		}
		if exists {
			continue
		}
		created := false
		for _, channel := range channels {
			if _, err := s.CreateFromReminder(ctx, reminder.ID, channel); err != nil {
				s.log.Error(fmt.Sprintf("Failed to create %s notification for reminder %d", channel, reminder.ID), err)
				continue
			}
			created = true
		}
		if created {
			notified++
		}
	}
	return notified, nil
}

// Create builds a pending notification directly.
func (s *notificationService) Create(ctx context.Context, req dto.CreateNotificationRequest) (*dto.NotificationResponse, error) {
	if req.UserID == "" || req.Title == "" {
		return nil, fmt.Errorf("%w: user id and title are required", appErrors.ErrValidation)
	}
	notification := &entity.Notification{
		UserID:      req.UserID,
		Type:        req.Type,
		Channel:     req.Channel,
		Title:       req.Title,
		Message:     req.Message,
		ActionURL:   req.ActionURL,
		Status:      constant.NotificationPending,
		ScheduledAt: req.ScheduledAt,
	}
	if _, err := s.notificationRepo.Create(ctx, notification); err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	resp := dto.ToNotificationResponse(notification)
	return &resp, nil
}

// deliver routes one notification to its channel. In-app notifications are
// immediately satisfied; other channels go through their provider.
func (s *notificationService) deliver(ctx context.Context, notification *entity.Notification) error {
	if notification.Channel == constant.ChannelInApp {
		return nil
	}
	provider, ok := s.providers[notification.Channel]
	if !ok {
		return fmt.Errorf("%w: no provider registered for channel %s", appErrors.ErrDelivery, notification.Channel)
	}
	return provider.Send(ctx, notification)
}

// DispatchPending attempts delivery of every due pending notification.
// Failures are recorded on the notification and never retried here; the
// batch continues past them.
func (s *notificationService) DispatchPending(ctx context.Context) (int, error) {
	now := s.clock.Now()
	notifications, err := s.notificationRepo.FindDispatchable(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	sent := 0
	for _, notification := range notifications {
		if err := s.deliver(ctx, notification); err != nil {
			notification.Status = constant.NotificationFailed
			notification.ErrorMessage = err.Error()
			s.log.Error(fmt.Sprintf("Delivery failed for notification %d on channel %s", notification.ID, notification.Channel), err)
		} else {
			sentAt := s.clock.Now()
			notification.Status = constant.NotificationSent
			notification.SentAt = &sentAt
			sent++
		}
		if err := s.notificationRepo.Update(ctx, notification); err != nil {
			s.log.Error(fmt.Sprintf("Failed to persist dispatch result for notification %d", notification.ID), err)
			continue
		}
		if notification.Status == constant.NotificationSent && notification.ReminderID != nil {
			s.markReminderSent(ctx, *notification.ReminderID)
		}
	}
	if len(notifications) > 0 {
		s.log.Info(fmt.Sprintf("Dispatched %d/%d pending notifications", sent, len(notifications)))
	}
	return sent, nil
}

// markReminderSent moves the source reminder to sent once its notification
// went out. A reminder already past pending is left alone.
func (s *notificationService) markReminderSent(ctx context.Context, reminderID uint) {
	reminder, err := s.reminderRepo.FindByID(ctx, reminderID)
	if err != nil {
		if !isRecordNotFound(err) {
			s.log.Error(fmt.Sprintf("Failed to load reminder %d after dispatch", reminderID), err)
		}
		return
	}
	if reminder.Status != constant.ReminderPending {
		return
	}
	now := s.clock.Now()
	reminder.Status = constant.ReminderSent
	reminder.SentAt = &now
	if err := s.reminderRepo.Update(ctx, reminder); err != nil {
		s.log.Error(fmt.Sprintf("Failed to mark reminder %d sent after dispatch", reminderID), err)
	}
}

// MarkRead finalizes a pending/sent notification as read. Reading an
// undelivered notification is permitted and simply finalizes it.
func (s *notificationService) MarkRead(ctx context.Context, notificationID uint, userID string) (*dto.NotificationResponse, error) {
	notification, err := s.notificationRepo.FindByIDAndUser(ctx, notificationID, userID)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, appErrors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	if notification.Status != constant.NotificationPending && notification.Status != constant.NotificationSent {
		return nil, fmt.Errorf("%w: notification %d is %s", appErrors.ErrValidation, notificationID, notification.Status)
	}

	now := s.clock.Now()
	notification.Status = constant.NotificationRead
	notification.ReadAt = &now
	if err := s.notificationRepo.Update(ctx, notification); err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	resp := dto.ToNotificationResponse(notification)
	return &resp, nil
}

// MarkAllRead finalizes every pending/sent notification of the user.
func (s *notificationService) MarkAllRead(ctx context.Context, userID string) error {
	if err := s.notificationRepo.MarkAllRead(ctx, userID, s.clock.Now()); err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return nil
}

// ListByUser retrieves all notifications of a user, newest first.
func (s *notificationService) ListByUser(ctx context.Context, userID string) ([]dto.NotificationResponse, error) {
	notifications, err := s.notificationRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return dto.ToNotificationResponseList(notifications), nil
}

// PruneOld deletes read notifications older than daysOld.
func (s *notificationService) PruneOld(ctx context.Context, daysOld int) (int64, error) {
	if daysOld <= 0 {
		daysOld = DefaultNotificationRetentionDays
	}
	cutoff := s.clock.Now().AddDate(0, 0, -daysOld)
	deleted, err := s.notificationRepo.DeleteReadOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	if deleted > 0 {
		s.log.Info(fmt.Sprintf("Pruned %d read notifications older than %d days", deleted, daysOld))
	}
	return deleted, nil
}
