package sqlite

import (
	"context"
	"errors"
	"fmt"

	"fleetcare/internal/domain/entity"
	"fleetcare/internal/domain/repository"

	"gorm.io/gorm"
)

type vehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository creates a new instance of VehicleRepository.
func NewVehicleRepository(db *gorm.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

// FindByID retrieves a vehicle by its ID.
func (r *vehicleRepository) FindByID(ctx context.Context, id uint) (*entity.Vehicle, error) {
	var vehicle entity.Vehicle
	if err := r.db.WithContext(ctx).First(&vehicle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("vehicle %d not found: %w", id, err)
		}
		return nil, fmt.Errorf("🔴 ERROR: failed to find vehicle %d: %w", id, err)
	}
	return &vehicle, nil
}

// FindByIDAndOwner retrieves a vehicle only if it belongs to the owner.
func (r *vehicleRepository) FindByIDAndOwner(ctx context.Context, id uint, ownerID string) (*entity.Vehicle, error) {
	var vehicle entity.Vehicle
	if err := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).First(&vehicle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("vehicle %d not found for owner: %w", id, err)
		}
		return nil, fmt.Errorf("🔴 ERROR: failed to find vehicle %d for owner %s: %w", id, ownerID, err)
	}
	return &vehicle, nil
}

// FindByOwner retrieves all vehicles of an owner.
func (r *vehicleRepository) FindByOwner(ctx context.Context, ownerID string) ([]*entity.Vehicle, error) {
	var vehicles []*entity.Vehicle
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Find(&vehicles).Error; err != nil {
		return nil, fmt.Errorf("🔴 ERROR: failed to find vehicles for owner %s: %w", ownerID, err)
	}
	return vehicles, nil
}

// Create creates a new vehicle.
func (r *vehicleRepository) Create(ctx context.Context, vehicle *entity.Vehicle) (uint, error) {
	if err := r.db.WithContext(ctx).Create(vehicle).Error; err != nil {
		return 0, fmt.Errorf("🔴 ERROR: failed to create vehicle for owner %s: %w", vehicle.OwnerID, err)
	}
	return vehicle.ID, nil
}

// Update updates an existing vehicle.
func (r *vehicleRepository) Update(ctx context.Context, vehicle *entity.Vehicle) error {
	if err := r.db.WithContext(ctx).Save(vehicle).Error; err != nil {
		return fmt.Errorf("🔴 ERROR: failed to update vehicle %d: %w", vehicle.ID, err)
	}
	return nil
}

// UpdateReadings updates the live odometer/engine-hour readings.
func (r *vehicleRepository) UpdateReadings(ctx context.Context, id uint, mileage float64, hours *float64) error {
	updates := map[string]interface{}{"current_mileage": mileage}
	if hours != nil {
		updates["current_hours"] = *hours
	}
	res := r.db.WithContext(ctx).Model(&entity.Vehicle{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("🔴 ERROR: failed to update readings for vehicle %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("vehicle %d not found: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}

// Delete deletes a vehicle by its ID.
func (r *vehicleRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&entity.Vehicle{}, id).Error; err != nil {
		return fmt.Errorf("🔴 ERROR: failed to delete vehicle %d: %w", id, err)
	}
	return nil
}
