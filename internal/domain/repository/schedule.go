package repository

import (
	"context"

	"fleetcare/internal/domain/entity"
)

// ScheduleRepository defines the interface for maintenance-schedule data.
type ScheduleRepository interface {
	// FindByID retrieves a schedule by its ID.
	FindByID(ctx context.Context, id uint) (*entity.MaintenanceSchedule, error)
	// FindByVehicleID retrieves all schedules of a vehicle.
	FindByVehicleID(ctx context.Context, vehicleID uint) ([]*entity.MaintenanceSchedule, error)
	// FindActiveByVehicleID retrieves the active schedules of a vehicle.
	FindActiveByVehicleID(ctx context.Context, vehicleID uint) ([]*entity.MaintenanceSchedule, error)
	// FindAllActive retrieves every active schedule system-wide (daily scan).
	FindAllActive(ctx context.Context) ([]*entity.MaintenanceSchedule, error)
	// Create creates a new schedule. Returns the ID of the created schedule.
	Create(ctx context.Context, schedule *entity.MaintenanceSchedule) (uint, error)
	// Update persists the full schedule state in a single write.
	Update(ctx context.Context, schedule *entity.MaintenanceSchedule) error
	// Delete deletes a schedule by its ID.
	Delete(ctx context.Context, id uint) error
	// DeleteByVehicleID deletes all schedules of a vehicle.
	DeleteByVehicleID(ctx context.Context, vehicleID uint) error
}
