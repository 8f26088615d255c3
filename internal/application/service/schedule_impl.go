package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"fleetcare/internal/application/dto"
	"fleetcare/internal/domain/constant"
	"fleetcare/internal/domain/entity"
	"fleetcare/internal/domain/interval"
	"fleetcare/internal/domain/repository"
	appErrors "fleetcare/internal/pkg/errors"
	"fleetcare/internal/pkg/logger"

	"github.com/zoobzio/clockz"
	"gorm.io/gorm"
)

type scheduleService struct {
	scheduleRepo  repository.ScheduleRepository
	vehicleRepo   repository.VehicleRepository
	templateRepo  repository.TemplateRepository
	recordRepo    repository.ServiceRecordRepository
	reminderRepo  repository.ReminderRepository
	clock         clockz.Clock
	log           logger.Logger
}

// NewScheduleService creates a new instance of ScheduleService implementation.
func NewScheduleService(
	scheduleRepo repository.ScheduleRepository,
	vehicleRepo repository.VehicleRepository,
	templateRepo repository.TemplateRepository,
	recordRepo repository.ServiceRecordRepository,
	reminderRepo repository.ReminderRepository,
	clock clockz.Clock,
	log logger.Logger,
) ScheduleService {
	if clock == nil {
		clock = clockz.RealClock
	}
	return &scheduleService{
		scheduleRepo: scheduleRepo,
		vehicleRepo:  vehicleRepo,
		templateRepo: templateRepo,
		recordRepo:   recordRepo,
		reminderRepo: reminderRepo,
		clock:        clock,
		log:          log,
	}
}

// isRecordNotFound unwraps the repository error chain down to GORM's
// sentinel. Repositories wrap it once, so both levels are checked.
func isRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(errors.Unwrap(err), gorm.ErrRecordNotFound)
}

// getOwned loads a schedule and its vehicle, verifying the vehicle belongs
// to the acting user. Ownership failures surface as ErrNotFound.
func (s *scheduleService) getOwned(ctx context.Context, scheduleID uint, ownerID string) (*entity.MaintenanceSchedule, *entity.Vehicle, error) {
	schedule, err := s.scheduleRepo.FindByID(ctx, scheduleID)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, nil, appErrors.ErrNotFound
		}
		return nil, nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	vehicle, err := s.vehicleRepo.FindByIDAndOwner(ctx, schedule.VehicleID, ownerID)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, nil, appErrors.ErrNotFound
		}
		return nil, nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return schedule, vehicle, nil
}

func (s *scheduleService) response(schedule *entity.MaintenanceSchedule, vehicle *entity.Vehicle) *dto.ScheduleResponse {
	now := s.clock.Now()
	status := interval.Status(schedule, vehicle.CurrentMileage, vehicle.CurrentHours, now)
	rem := interval.ComputeRemaining(schedule, vehicle.CurrentMileage, vehicle.CurrentHours, now)
	resp := dto.ToScheduleResponse(schedule, status, rem)
	return &resp
}

// applyNextDue recomputes and stores the derived next-due fields.
func applyNextDue(schedule *entity.MaintenanceSchedule) {
	next := interval.ComputeNextDue(schedule)
	schedule.NextDueDate = next.Date
	schedule.NextDueMileage = next.Mileage
	schedule.NextDueHours = next.Hours
}

// Create instantiates a schedule, optionally from a template.
func (s *scheduleService) Create(ctx context.Context, ownerID string, req dto.CreateScheduleRequest) (*dto.ScheduleResponse, error) {
	vehicle, err := s.vehicleRepo.FindByIDAndOwner(ctx, req.VehicleID, ownerID)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, appErrors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	schedule := &entity.MaintenanceSchedule{
		VehicleID:         req.VehicleID,
		CombinationPolicy: constant.PolicyAll,
		Active:            true,
	}

	if req.TemplateID != nil {
		template, err := s.templateRepo.FindByID(ctx, *req.TemplateID)
		if err != nil {
			if isRecordNotFound(err) {
				return nil, fmt.Errorf("%w: template %d does not exist", appErrors.ErrValidation, *req.TemplateID)
			}
			return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
		}
		schedule.TemplateID = req.TemplateID
		schedule.TaskName = template.TaskName
		schedule.Category = template.Category
		schedule.Description = template.Description
		schedule.IntervalMonths = template.IntervalMonths
		schedule.IntervalKilometers = template.IntervalKilometers
		schedule.IntervalHours = template.IntervalHours
		if template.CombinationPolicy.Valid() {
			schedule.CombinationPolicy = template.CombinationPolicy
		}
		schedule.ReminderDaysBefore = template.ReminderDaysBefore
		schedule.ReminderKmBefore = template.ReminderKmBefore
		schedule.ReminderHoursBefore = template.ReminderHoursBefore
	}

	// Request fields win over template defaults.
	if req.TaskName != nil {
		schedule.TaskName = *req.TaskName
	}
	if req.Category != nil {
		schedule.Category = *req.Category
	}
	if req.Description != nil {
		schedule.Description = *req.Description
	}
	if req.IntervalMonths != nil {
		schedule.IntervalMonths = req.IntervalMonths
	}
	if req.IntervalKilometers != nil {
		schedule.IntervalKilometers = req.IntervalKilometers
	}
	if req.IntervalHours != nil {
		schedule.IntervalHours = req.IntervalHours
	}
	if req.CombinationPolicy != nil {
		if !req.CombinationPolicy.Valid() {
			return nil, fmt.Errorf("%w: unknown combination policy %q", appErrors.ErrValidation, *req.CombinationPolicy)
		}
		schedule.CombinationPolicy = *req.CombinationPolicy
	}
	if req.ReminderDaysBefore != nil {
		schedule.ReminderDaysBefore = req.ReminderDaysBefore
	}
	if req.ReminderKmBefore != nil {
		schedule.ReminderKmBefore = req.ReminderKmBefore
	}
	if req.ReminderHoursBefore != nil {
		schedule.ReminderHoursBefore = req.ReminderHoursBefore
	}
	schedule.LastCompletedDate = req.LastCompletedDate
	schedule.LastCompletedMileage = req.LastCompletedMileage
	schedule.LastCompletedHours = req.LastCompletedHours

	if schedule.TaskName == "" {
		return nil, fmt.Errorf("%w: task name is required", appErrors.ErrValidation)
	}

	applyNextDue(schedule)
	if !schedule.HasAnyDimension() {
		// Accepted, but such a schedule can never become due.
		s.log.Warn(fmt.Sprintf("Schedule %q on vehicle %d has no fully configured interval dimension and will stay permanently OK", schedule.TaskName, schedule.VehicleID))
	}

	if _, err := s.scheduleRepo.Create(ctx, schedule); err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Created schedule %d (%s) for vehicle %d", schedule.ID, schedule.TaskName, schedule.VehicleID))
	return s.response(schedule, vehicle), nil
}

// Get retrieves a schedule with its derived due-state populated.
func (s *scheduleService) Get(ctx context.Context, scheduleID uint, ownerID string) (*dto.ScheduleResponse, error) {
	schedule, vehicle, err := s.getOwned(ctx, scheduleID, ownerID)
	if err != nil {
		return nil, err
	}
	return s.response(schedule, vehicle), nil
}

// ListByVehicle retrieves all schedules of one vehicle.
func (s *scheduleService) ListByVehicle(ctx context.Context, vehicleID uint, ownerID string) ([]dto.ScheduleResponse, error) {
	vehicle, err := s.vehicleRepo.FindByIDAndOwner(ctx, vehicleID, ownerID)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, appErrors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	schedules, err := s.scheduleRepo.FindByVehicleID(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	list := make([]dto.ScheduleResponse, 0, len(schedules))
	for _, schedule := range schedules {
		list = append(list, *s.response(schedule, vehicle))
	}
	return list, nil
}

// Update applies a partial patch and recomputes next-due values.
func (s *scheduleService) Update(ctx context.Context, scheduleID uint, ownerID string, req dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error) {
	schedule, vehicle, err := s.getOwned(ctx, scheduleID, ownerID)
	if err != nil {
		return nil, err
	}

	if req.TaskName != nil {
		schedule.TaskName = *req.TaskName
	}
	if req.Category != nil {
		schedule.Category = *req.Category
	}
	if req.Description != nil {
		schedule.Description = *req.Description
	}
	if req.IntervalMonths != nil {
		schedule.IntervalMonths = req.IntervalMonths
	}
	if req.IntervalKilometers != nil {
		schedule.IntervalKilometers = req.IntervalKilometers
	}
	if req.IntervalHours != nil {
		schedule.IntervalHours = req.IntervalHours
	}
	if req.CombinationPolicy != nil {
		if !req.CombinationPolicy.Valid() {
			return nil, fmt.Errorf("%w: unknown combination policy %q", appErrors.ErrValidation, *req.CombinationPolicy)
		}
		schedule.CombinationPolicy = *req.CombinationPolicy
	}
	if req.ReminderDaysBefore != nil {
		schedule.ReminderDaysBefore = req.ReminderDaysBefore
	}
	if req.ReminderKmBefore != nil {
		schedule.ReminderKmBefore = req.ReminderKmBefore
	}
	if req.ReminderHoursBefore != nil {
		schedule.ReminderHoursBefore = req.ReminderHoursBefore
	}
	if req.Active != nil {
		schedule.Active = *req.Active
	}

	applyNextDue(schedule)
	if err := s.scheduleRepo.Update(ctx, schedule); err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return s.response(schedule, vehicle), nil
}

// Complete records new last-completed values and recomputes next-due.
func (s *scheduleService) Complete(ctx context.Context, scheduleID uint, ownerID string, req dto.CompleteScheduleRequest) (*dto.ScheduleResponse, error) {
	schedule, vehicle, err := s.getOwned(ctx, scheduleID, ownerID)
	if err != nil {
		return nil, err
	}

	completedAt := s.clock.Now()
	if req.CompletedDate != nil {
		completedAt = *req.CompletedDate
	}
	schedule.LastCompletedDate = &completedAt
	if req.Mileage != nil {
		schedule.LastCompletedMileage = req.Mileage
	}
	if req.Hours != nil {
		schedule.LastCompletedHours = req.Hours
	}
	if req.ServiceRecordID != nil {
		schedule.ServiceRecordID = req.ServiceRecordID
	}

	applyNextDue(schedule)
	if err := s.scheduleRepo.Update(ctx, schedule); err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.resolveReminders(ctx, schedule.ID)
	s.log.Info(fmt.Sprintf("Completed schedule %d (%s) at %v", schedule.ID, schedule.TaskName, completedAt))
	return s.response(schedule, vehicle), nil
}

// resolveReminders marks any outstanding reminder of the schedule completed
// so the next scan can fire fresh. Failures here never fail the completion.
func (s *scheduleService) resolveReminders(ctx context.Context, scheduleID uint) {
	reminders, err := s.reminderRepo.FindActiveByScheduleID(ctx, scheduleID)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to load outstanding reminders for schedule %d", scheduleID), err)
		return
	}
	for _, reminder := range reminders {
		reminder.Status = constant.ReminderCompleted
		if err := s.reminderRepo.Update(ctx, reminder); err != nil {
			s.log.Error(fmt.Sprintf("Failed to complete reminder %d for schedule %d", reminder.ID, scheduleID), err)
		}
	}
}

// LinkServiceRecord completes the schedule using the record's values, so the
// two completion paths can never diverge in semantics.
func (s *scheduleService) LinkServiceRecord(ctx context.Context, scheduleID uint, ownerID string, serviceRecordID uint) (*dto.ScheduleResponse, error) {
	schedule, _, err := s.getOwned(ctx, scheduleID, ownerID)
	if err != nil {
		return nil, err
	}
	record, err := s.recordRepo.FindByID(ctx, serviceRecordID)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, appErrors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	if record.VehicleID != schedule.VehicleID {
		return nil, appErrors.ErrNotFound
	}

	performedAt := record.PerformedAt
	mileage := record.Mileage
	return s.Complete(ctx, scheduleID, ownerID, dto.CompleteScheduleRequest{
		CompletedDate:   &performedAt,
		Mileage:         &mileage,
		Hours:           record.Hours,
		ServiceRecordID: &serviceRecordID,
	})
}

// Delete removes the schedule and cascades to its reminders.
func (s *scheduleService) Delete(ctx context.Context, scheduleID uint, ownerID string) error {
	schedule, _, err := s.getOwned(ctx, scheduleID, ownerID)
	if err != nil {
		return err
	}
	if err := s.reminderRepo.DeleteByScheduleID(ctx, schedule.ID); err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	if err := s.scheduleRepo.Delete(ctx, schedule.ID); err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Deleted schedule %d and its reminders", schedule.ID))
	return nil
}

// listByStatus collects the user's active schedules in the wanted due-state,
// each evaluated against its own vehicle's readings.
func (s *scheduleService) listByStatus(ctx context.Context, ownerID string, wanted constant.DueStatus) ([]dto.ScheduleResponse, error) {
	vehicles, err := s.vehicleRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	now := s.clock.Now()
	var matched []dto.ScheduleResponse
	for _, vehicle := range vehicles {
		schedules, err := s.scheduleRepo.FindActiveByVehicleID(ctx, vehicle.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
		}
		for _, schedule := range schedules {
			if interval.Status(schedule, vehicle.CurrentMileage, vehicle.CurrentHours, now) != wanted {
				continue
			}
			rem := interval.ComputeRemaining(schedule, vehicle.CurrentMileage, vehicle.CurrentHours, now)
			matched = append(matched, dto.ToScheduleResponse(schedule, wanted, rem))
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i].NextDueDate, matched[j].NextDueDate
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.Before(*b)
		}
	})
	return matched, nil
}

// ListOverdue returns the user's overdue active schedules.
func (s *scheduleService) ListOverdue(ctx context.Context, ownerID string) ([]dto.ScheduleResponse, error) {
	return s.listByStatus(ctx, ownerID, constant.StatusOverdue)
}

// ListUpcoming returns the user's due-soon active schedules.
func (s *scheduleService) ListUpcoming(ctx context.Context, ownerID string) ([]dto.ScheduleResponse, error) {
	return s.listByStatus(ctx, ownerID, constant.StatusDueSoon)
}

// RecalculateForVehicle re-derives next-due for every schedule of a vehicle.
// A failure on one schedule is logged and the batch continues.
func (s *scheduleService) RecalculateForVehicle(ctx context.Context, vehicleID uint) error {
	schedules, err := s.scheduleRepo.FindByVehicleID(ctx, vehicleID)
	if err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	for _, schedule := range schedules {
		applyNextDue(schedule)
		if err := s.scheduleRepo.Update(ctx, schedule); err != nil {
			s.log.Error(fmt.Sprintf("Failed to recalculate schedule %d for vehicle %d", schedule.ID, vehicleID), err)
			continue
		}
	}
	s.log.Debug(fmt.Sprintf("Recalculated %d schedules for vehicle %d", len(schedules), vehicleID))
	return nil
}
