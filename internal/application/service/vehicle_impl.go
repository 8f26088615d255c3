package service

import (
	"context"
	"fmt"

	"fleetcare/internal/application/dto"
	"fleetcare/internal/domain/entity"
	"fleetcare/internal/domain/repository"
	appErrors "fleetcare/internal/pkg/errors"
	"fleetcare/internal/pkg/logger"

	"github.com/zoobzio/clockz"
)

type vehicleService struct {
	vehicleRepo  repository.VehicleRepository
	recordRepo   repository.ServiceRecordRepository
	scheduleRepo repository.ScheduleRepository
	reminderRepo repository.ReminderRepository
	scheduleSvc  ScheduleService
	clock        clockz.Clock
	log          logger.Logger
}

// NewVehicleService creates a new instance of VehicleService implementation.
func NewVehicleService(
	vehicleRepo repository.VehicleRepository,
	recordRepo repository.ServiceRecordRepository,
	scheduleRepo repository.ScheduleRepository,
	reminderRepo repository.ReminderRepository,
	scheduleSvc ScheduleService,
	clock clockz.Clock,
	log logger.Logger,
) VehicleService {
	if clock == nil {
		clock = clockz.RealClock
	}
	return &vehicleService{
		vehicleRepo:  vehicleRepo,
		recordRepo:   recordRepo,
		scheduleRepo: scheduleRepo,
		reminderRepo: reminderRepo,
		scheduleSvc:  scheduleSvc,
		clock:        clock,
		log:          log,
	}
}

func (s *vehicleService) getOwned(ctx context.Context, vehicleID uint, ownerID string) (*entity.Vehicle, error) {
	vehicle, err := s.vehicleRepo.FindByIDAndOwner(ctx, vehicleID, ownerID)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, appErrors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return vehicle, nil
}

// Create registers a vehicle for the owner.
func (s *vehicleService) Create(ctx context.Context, ownerID string, req dto.CreateVehicleRequest) (*dto.VehicleResponse, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: vehicle name is required", appErrors.ErrValidation)
	}
	if req.CurrentMileage < 0 {
		return nil, fmt.Errorf("%w: mileage cannot be negative", appErrors.ErrValidation)
	}

	vehicle := &entity.Vehicle{
		OwnerID:        ownerID,
		Name:           req.Name,
		CurrentMileage: req.CurrentMileage,
		CurrentHours:   req.CurrentHours,
	}
	if _, err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Registered vehicle %d (%s) for owner %s", vehicle.ID, vehicle.Name, ownerID))
	resp := dto.ToVehicleResponse(vehicle)
	return &resp, nil
}

// Get retrieves one of the owner's vehicles.
func (s *vehicleService) Get(ctx context.Context, vehicleID uint, ownerID string) (*dto.VehicleResponse, error) {
	vehicle, err := s.getOwned(ctx, vehicleID, ownerID)
	if err != nil {
		return nil, err
	}
	resp := dto.ToVehicleResponse(vehicle)
	return &resp, nil
}

// List retrieves all vehicles of the owner.
func (s *vehicleService) List(ctx context.Context, ownerID string) ([]dto.VehicleResponse, error) {
	vehicles, err := s.vehicleRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return dto.ToVehicleResponseList(vehicles), nil
}

// Update applies a partial patch and recalculates schedules when the
// readings moved.
func (s *vehicleService) Update(ctx context.Context, vehicleID uint, ownerID string, req dto.UpdateVehicleRequest) (*dto.VehicleResponse, error) {
	vehicle, err := s.getOwned(ctx, vehicleID, ownerID)
	if err != nil {
		return nil, err
	}

	readingsChanged := false
	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: vehicle name cannot be empty", appErrors.ErrValidation)
		}
		vehicle.Name = *req.Name
	}
	if req.CurrentMileage != nil {
		if *req.CurrentMileage < 0 {
			return nil, fmt.Errorf("%w: mileage cannot be negative", appErrors.ErrValidation)
		}
		vehicle.CurrentMileage = *req.CurrentMileage
		readingsChanged = true
	}
	if req.CurrentHours != nil {
		vehicle.CurrentHours = req.CurrentHours
		readingsChanged = true
	}

	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	if readingsChanged {
		if err := s.scheduleSvc.RecalculateForVehicle(ctx, vehicle.ID); err != nil {
			s.log.Error(fmt.Sprintf("Failed to recalculate schedules after reading update for vehicle %d", vehicle.ID), err)
		}
	}
	resp := dto.ToVehicleResponse(vehicle)
	return &resp, nil
}

// Delete removes the vehicle, its schedules and their reminders.
func (s *vehicleService) Delete(ctx context.Context, vehicleID uint, ownerID string) error {
	vehicle, err := s.getOwned(ctx, vehicleID, ownerID)
	if err != nil {
		return err
	}

	schedules, err := s.scheduleRepo.FindByVehicleID(ctx, vehicle.ID)
	if err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	for _, schedule := range schedules {
		if err := s.reminderRepo.DeleteByScheduleID(ctx, schedule.ID); err != nil {
			return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
		}
	}
	if err := s.scheduleRepo.DeleteByVehicleID(ctx, vehicle.ID); err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	if err := s.vehicleRepo.Delete(ctx, vehicle.ID); err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Deleted vehicle %d with %d schedules", vehicle.ID, len(schedules)))
	return nil
}

// AddServiceRecord logs a completed service against the vehicle.
func (s *vehicleService) AddServiceRecord(ctx context.Context, vehicleID uint, ownerID string, req dto.CreateServiceRecordRequest) (*dto.ServiceRecordResponse, error) {
	vehicle, err := s.getOwned(ctx, vehicleID, ownerID)
	if err != nil {
		return nil, err
	}
	if req.Mileage < 0 {
		return nil, fmt.Errorf("%w: mileage cannot be negative", appErrors.ErrValidation)
	}

	performedAt := s.clock.Now()
	if req.PerformedAt != nil {
		performedAt = *req.PerformedAt
	}
	record := &entity.ServiceRecord{
		VehicleID:   vehicle.ID,
		PerformedAt: performedAt,
		Mileage:     req.Mileage,
		Hours:       req.Hours,
		Description: req.Description,
	}
	if _, err := s.recordRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	// A service visit usually carries a fresher odometer reading.
	if record.Mileage > vehicle.CurrentMileage {
		hours := vehicle.CurrentHours
		if record.Hours != nil {
			hours = record.Hours
		}
		if err := s.vehicleRepo.UpdateReadings(ctx, vehicle.ID, record.Mileage, hours); err != nil {
			s.log.Error(fmt.Sprintf("Failed to advance readings for vehicle %d from service record %d", vehicle.ID, record.ID), err)
		} else if err := s.scheduleSvc.RecalculateForVehicle(ctx, vehicle.ID); err != nil {
			s.log.Error(fmt.Sprintf("Failed to recalculate schedules for vehicle %d", vehicle.ID), err)
		}
	}

	resp := dto.ToServiceRecordResponse(record)
	return &resp, nil
}

// ListServiceRecords retrieves the vehicle's service history.
func (s *vehicleService) ListServiceRecords(ctx context.Context, vehicleID uint, ownerID string) ([]dto.ServiceRecordResponse, error) {
	vehicle, err := s.getOwned(ctx, vehicleID, ownerID)
	if err != nil {
		return nil, err
	}
	records, err := s.recordRepo.FindByVehicleID(ctx, vehicle.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return dto.ToServiceRecordResponseList(records), nil
}
