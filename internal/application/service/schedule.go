package service

import (
	"context"

	"fleetcare/internal/application/dto"
)

// ScheduleService defines the interface for maintenance-schedule business
// logic. Every operation takes the acting user id; vehicles and schedules
// that exist but belong to someone else are reported as not found.
type ScheduleService interface {
	// Create instantiates a schedule, optionally from a template, computes
	// the initial next-due values and persists it.
	Create(ctx context.Context, ownerID string, req dto.CreateScheduleRequest) (*dto.ScheduleResponse, error)
	// Get retrieves a schedule with its derived due-state populated.
	Get(ctx context.Context, scheduleID uint, ownerID string) (*dto.ScheduleResponse, error)
	// ListByVehicle retrieves all schedules of one vehicle.
	ListByVehicle(ctx context.Context, vehicleID uint, ownerID string) ([]dto.ScheduleResponse, error)
	// Update applies a partial patch and recomputes next-due values against
	// the vehicle's live readings.
	Update(ctx context.Context, scheduleID uint, ownerID string, req dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error)
	// Complete records new last-completed values and recomputes next-due.
	// This is the canonical way a schedule's due-state resets.
	Complete(ctx context.Context, scheduleID uint, ownerID string, req dto.CompleteScheduleRequest) (*dto.ScheduleResponse, error)
	// LinkServiceRecord completes the schedule using the service record's
	// date, mileage and hours.
	LinkServiceRecord(ctx context.Context, scheduleID uint, ownerID string, serviceRecordID uint) (*dto.ScheduleResponse, error)
	// Delete removes the schedule and cascades to its reminders.
	Delete(ctx context.Context, scheduleID uint, ownerID string) error
	// ListOverdue returns the user's overdue active schedules across all
	// vehicles, sorted by next-due date ascending.
	ListOverdue(ctx context.Context, ownerID string) ([]dto.ScheduleResponse, error)
	// ListUpcoming returns the user's due-soon active schedules across all
	// vehicles, sorted by next-due date ascending.
	ListUpcoming(ctx context.Context, ownerID string) ([]dto.ScheduleResponse, error)
	// RecalculateForVehicle re-derives next-due for every schedule of the
	// vehicle. Invoked whenever the vehicle's readings change externally.
	RecalculateForVehicle(ctx context.Context, vehicleID uint) error
}
