package sqlite

import (
	"context"
	"errors"
	"fmt"

	"fleetcare/internal/domain/entity"
	"fleetcare/internal/domain/repository"

	"gorm.io/gorm"
)

type scheduleRepository struct {
	db *gorm.DB
}

// NewScheduleRepository creates a new instance of ScheduleRepository.
func NewScheduleRepository(db *gorm.DB) repository.ScheduleRepository {
	return &scheduleRepository{db: db}
}

// FindByID retrieves a schedule by its ID.
func (r *scheduleRepository) FindByID(ctx context.Context, id uint) (*entity.MaintenanceSchedule, error) {
	var schedule entity.MaintenanceSchedule
	if err := r.db.WithContext(ctx).First(&schedule, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("schedule %d not found: %w", id, err)
		}
		return nil, fmt.Errorf("🔴 ERROR: failed to find schedule %d: %w", id, err)
	}
	return &schedule, nil
}

// FindByVehicleID retrieves all schedules of a vehicle.
func (r *scheduleRepository) FindByVehicleID(ctx context.Context, vehicleID uint) ([]*entity.MaintenanceSchedule, error) {
	var schedules []*entity.MaintenanceSchedule
	if err := r.db.WithContext(ctx).Where("vehicle_id = ?", vehicleID).Find(&schedules).Error; err != nil {
		return nil, fmt.Errorf("🔴 ERROR: failed to find schedules for vehicle %d: %w", vehicleID, err)
	}
	return schedules, nil
}

// FindActiveByVehicleID retrieves the active schedules of a vehicle.
func (r *scheduleRepository) FindActiveByVehicleID(ctx context.Context, vehicleID uint) ([]*entity.MaintenanceSchedule, error) {
	var schedules []*entity.MaintenanceSchedule
	if err := r.db.WithContext(ctx).Where("vehicle_id = ? AND active = ?", vehicleID, true).Find(&schedules).Error; err != nil {
		return nil, fmt.Errorf("🔴 ERROR: failed to find active schedules for vehicle %d: %w", vehicleID, err)
	}
	return schedules, nil
}

// FindAllActive retrieves every active schedule system-wide.
func (r *scheduleRepository) FindAllActive(ctx context.Context) ([]*entity.MaintenanceSchedule, error) {
	var schedules []*entity.MaintenanceSchedule
	if err := r.db.WithContext(ctx).Where("active = ?", true).Find(&schedules).Error; err != nil {
		return nil, fmt.Errorf("🔴 ERROR: failed to find active schedules: %w", err)
	}
	return schedules, nil
}

// Create creates a new schedule. Returns the ID of the created schedule.
func (r *scheduleRepository) Create(ctx context.Context, schedule *entity.MaintenanceSchedule) (uint, error) {
	if err := r.db.WithContext(ctx).Create(schedule).Error; err != nil {
		return 0, fmt.Errorf("🔴 ERROR: failed to create schedule for vehicle %d: %w", schedule.VehicleID, err)
	}
	return schedule.ID, nil
}

// Update persists the full schedule state in a single write.
func (r *scheduleRepository) Update(ctx context.Context, schedule *entity.MaintenanceSchedule) error {
	if err := r.db.WithContext(ctx).Save(schedule).Error; err != nil {
		return fmt.Errorf("🔴 ERROR: failed to update schedule %d: %w", schedule.ID, err)
	}
	return nil
}

// Delete deletes a schedule by its ID.
func (r *scheduleRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&entity.MaintenanceSchedule{}, id).Error; err != nil {
		return fmt.Errorf("🔴 ERROR: failed to delete schedule %d: %w", id, err)
	}
	return nil
}

// DeleteByVehicleID deletes all schedules of a vehicle.
func (r *scheduleRepository) DeleteByVehicleID(ctx context.Context, vehicleID uint) error {
	if err := r.db.WithContext(ctx).Where("vehicle_id = ?", vehicleID).Delete(&entity.MaintenanceSchedule{}).Error; err != nil {
		return fmt.Errorf("🔴 ERROR: failed to delete schedules for vehicle %d: %w", vehicleID, err)
	}
	return nil
}
