package repository

import (
	"context"

	"fleetcare/internal/domain/entity"
)

// VehicleRepository defines the interface for vehicle directory operations.
type VehicleRepository interface {
	// FindByID retrieves a vehicle by its ID.
	FindByID(ctx context.Context, id uint) (*entity.Vehicle, error)
	// FindByIDAndOwner retrieves a vehicle only if it belongs to the owner.
	FindByIDAndOwner(ctx context.Context, id uint, ownerID string) (*entity.Vehicle, error)
	// FindByOwner retrieves all vehicles of an owner.
	FindByOwner(ctx context.Context, ownerID string) ([]*entity.Vehicle, error)
	// Create creates a new vehicle.
	Create(ctx context.Context, vehicle *entity.Vehicle) (uint, error)
	// Update updates an existing vehicle.
	Update(ctx context.Context, vehicle *entity.Vehicle) error
	// UpdateReadings updates the live odometer/engine-hour readings.
	UpdateReadings(ctx context.Context, id uint, mileage float64, hours *float64) error
	// Delete deletes a vehicle by its ID.
	Delete(ctx context.Context, id uint) error
}
