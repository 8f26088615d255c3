package service

import (
	"context"
	"fmt"
	"sync"

	"fleetcare/internal/infrastructure/scheduler"
	appErrors "fleetcare/internal/pkg/errors"
	"fleetcare/internal/pkg/logger"

	"github.com/robfig/cron/v3"
)

// dailyTickSpec fires once per day at midnight UTC.
// Seconds Minutes Hours DayOfMonth Month DayOfWeek
const dailyTickSpec = "0 0 0 * * *"

type maintenanceLoopService struct {
	cronScheduler       *scheduler.Scheduler
	reminderService     ReminderService
	notificationService NotificationService
	log                 logger.Logger

	mu      sync.Mutex // Protect entryID access
	entryID cron.EntryID
	started bool
}

// NewMaintenanceLoopService creates a new instance of MaintenanceLoopService
// implementation.
func NewMaintenanceLoopService(
	cronScheduler *scheduler.Scheduler,
	reminderService ReminderService,
	notificationService NotificationService,
	log logger.Logger,
) MaintenanceLoopService {
	return &maintenanceLoopService{
		cronScheduler:       cronScheduler,
		reminderService:     reminderService,
		notificationService: notificationService,
		log:                 log,
	}
}

// Start registers the daily tick with the cron scheduler.
func (s *maintenanceLoopService) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return fmt.Errorf("%w: maintenance loop already started", appErrors.ErrScheduling)
	}

	id, err := s.cronScheduler.AddJob(dailyTickSpec, func() {
		s.RunTick(context.Background())
	})
	if err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrScheduling, err)
	}
	s.entryID = id
	s.started = true
	s.log.Info(fmt.Sprintf("Maintenance loop registered with spec %q", dailyTickSpec))
	return nil
}

// RunTick executes one full pass: scan schedules into reminders, turn fresh
// reminders into notifications, dispatch pending notifications, then prune
// aged reminders and notifications. A failing step is logged and the
// remaining steps still run.
func (s *maintenanceLoopService) RunTick(ctx context.Context) {
	s.log.Info("Maintenance loop tick started")

	created, err := s.reminderService.ScanAndCreateReminders(ctx)
	if err != nil {
		s.log.Error("Maintenance loop: reminder scan failed", err)
	} else if created > 0 {
		s.log.Info(fmt.Sprintf("Maintenance loop: created %d reminders", created))
	}

	notified, err := s.notificationService.CreateForPendingReminders(ctx)
	if err != nil {
		s.log.Error("Maintenance loop: notification creation failed", err)
	} else if notified > 0 {
		s.log.Info(fmt.Sprintf("Maintenance loop: notified %d reminders", notified))
	}

	sent, err := s.notificationService.DispatchPending(ctx)
	if err != nil {
		s.log.Error("Maintenance loop: notification dispatch failed", err)
	} else if sent > 0 {
		s.log.Info(fmt.Sprintf("Maintenance loop: dispatched %d notifications", sent))
	}

	if _, err := s.reminderService.PruneOld(ctx, DefaultReminderRetentionDays); err != nil {
		s.log.Error("Maintenance loop: reminder pruning failed", err)
	}
	if _, err := s.notificationService.PruneOld(ctx, DefaultNotificationRetentionDays); err != nil {
		s.log.Error("Maintenance loop: notification pruning failed", err)
	}

	s.log.Info("Maintenance loop tick finished")
}

// Stop unregisters the daily tick. The shared cron scheduler itself is
// stopped by its owner.
func (s *maintenanceLoopService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return
	}
	s.cronScheduler.RemoveJob(s.entryID)
	s.started = false
	s.log.Info("Maintenance loop unregistered")
}
