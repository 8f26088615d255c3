package repository

import (
	"context"

	"fleetcare/internal/domain/entity"
)

// ServiceRecordRepository defines the interface for service-record lookups.
type ServiceRecordRepository interface {
	// FindByID retrieves a service record by its ID.
	FindByID(ctx context.Context, id uint) (*entity.ServiceRecord, error)
	// FindByVehicleID retrieves all service records of a vehicle.
	FindByVehicleID(ctx context.Context, vehicleID uint) ([]*entity.ServiceRecord, error)
	// Create creates a new service record.
	Create(ctx context.Context, record *entity.ServiceRecord) (uint, error)
}
