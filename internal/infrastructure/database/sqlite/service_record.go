package sqlite

import (
	"context"
	"errors"
	"fmt"

	"fleetcare/internal/domain/entity"
	"fleetcare/internal/domain/repository"

	"gorm.io/gorm"
)

type serviceRecordRepository struct {
	db *gorm.DB
}

// NewServiceRecordRepository creates a new instance of ServiceRecordRepository.
func NewServiceRecordRepository(db *gorm.DB) repository.ServiceRecordRepository {
	return &serviceRecordRepository{db: db}
}

// FindByID retrieves a service record by its ID.
func (r *serviceRecordRepository) FindByID(ctx context.Context, id uint) (*entity.ServiceRecord, error) {
	var record entity.ServiceRecord
	if err := r.db.WithContext(ctx).First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("service record %d not found: %w", id, err)
		}
		return nil, fmt.Errorf("🔴 ERROR: failed to find service record %d: %w", id, err)
	}
	return &record, nil
}

// FindByVehicleID retrieves all service records of a vehicle.
func (r *serviceRecordRepository) FindByVehicleID(ctx context.Context, vehicleID uint) ([]*entity.ServiceRecord, error) {
	var records []*entity.ServiceRecord
	if err := r.db.WithContext(ctx).Where("vehicle_id = ?", vehicleID).Order("performed_at desc").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("🔴 ERROR: failed to find service records for vehicle %d: %w", vehicleID, err)
	}
	return records, nil
}

// Create creates a new service record.
func (r *serviceRecordRepository) Create(ctx context.Context, record *entity.ServiceRecord) (uint, error) {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return 0, fmt.Errorf("🔴 ERROR: failed to create service record for vehicle %d: %w", record.VehicleID, err)
	}
	return record.ID, nil
}
