package service

import (
	"context"

	"fleetcare/internal/application/dto"
)

// VehicleService defines the interface for vehicle directory business logic.
type VehicleService interface {
	// Create registers a vehicle for the owner.
	Create(ctx context.Context, ownerID string, req dto.CreateVehicleRequest) (*dto.VehicleResponse, error)
	// Get retrieves one of the owner's vehicles.
	Get(ctx context.Context, vehicleID uint, ownerID string) (*dto.VehicleResponse, error)
	// List retrieves all vehicles of the owner.
	List(ctx context.Context, ownerID string) ([]dto.VehicleResponse, error)
	// Update applies a partial patch. Changed readings trigger a schedule
	// recalculation for the vehicle.
	Update(ctx context.Context, vehicleID uint, ownerID string, req dto.UpdateVehicleRequest) (*dto.VehicleResponse, error)
	// Delete removes the vehicle and cascades to its schedules and their
	// reminders.
	Delete(ctx context.Context, vehicleID uint, ownerID string) error
	// AddServiceRecord logs a completed service against the vehicle and
	// brings the vehicle's readings forward when the record is newer.
	AddServiceRecord(ctx context.Context, vehicleID uint, ownerID string, req dto.CreateServiceRecordRequest) (*dto.ServiceRecordResponse, error)
	// ListServiceRecords retrieves the vehicle's service history.
	ListServiceRecords(ctx context.Context, vehicleID uint, ownerID string) ([]dto.ServiceRecordResponse, error)
}
