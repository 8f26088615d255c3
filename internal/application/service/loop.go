package service

import "context"

// MaintenanceLoopService owns the periodic daily tick: scan schedules into
// reminders, dispatch notifications, then prune aged records.
type MaintenanceLoopService interface {
	// Start registers the daily tick with the cron scheduler.
	Start() error
	// RunTick executes one full pass immediately. Step failures are logged
	// and never abort the remaining steps.
	RunTick(ctx context.Context)
	// Stop unregisters the daily tick.
	Stop()
}
