package service

import (
	"context"
	"fmt"

	"fleetcare/internal/application/dto"
	"fleetcare/internal/domain/constant"
	"fleetcare/internal/domain/entity"
	"fleetcare/internal/domain/repository"
	appErrors "fleetcare/internal/pkg/errors"
	"fleetcare/internal/pkg/logger"
)

type templateService struct {
	templateRepo repository.TemplateRepository
	log          logger.Logger
}

// NewTemplateService creates a new instance of TemplateService implementation.
func NewTemplateService(templateRepo repository.TemplateRepository, log logger.Logger) TemplateService {
	return &templateService{
		templateRepo: templateRepo,
		log:          log,
	}
}

// ListAvailable retrieves system templates plus the user's own.
func (s *templateService) ListAvailable(ctx context.Context, userID string) ([]dto.TemplateResponse, error) {
	templates, err := s.templateRepo.FindAvailable(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return dto.ToTemplateResponseList(templates), nil
}

// Create creates a template owned by the user.
func (s *templateService) Create(ctx context.Context, userID string, req dto.CreateTemplateRequest) (*dto.TemplateResponse, error) {
	if req.TaskName == "" {
		return nil, fmt.Errorf("%w: task name is required", appErrors.ErrValidation)
	}

	template := &entity.MaintenanceTemplate{
		OwnerID:             &userID,
		TaskName:            req.TaskName,
		Category:            req.Category,
		Description:         req.Description,
		IntervalMonths:      req.IntervalMonths,
		IntervalKilometers:  req.IntervalKilometers,
		IntervalHours:       req.IntervalHours,
		CombinationPolicy:   constant.PolicyAll,
		ReminderDaysBefore:  req.ReminderDaysBefore,
		ReminderKmBefore:    req.ReminderKmBefore,
		ReminderHoursBefore: req.ReminderHoursBefore,
	}
	if req.CombinationPolicy != nil {
		if !req.CombinationPolicy.Valid() {
			return nil, fmt.Errorf("%w: unknown combination policy %q", appErrors.ErrValidation, *req.CombinationPolicy)
		}
		template.CombinationPolicy = *req.CombinationPolicy
	}

	if _, err := s.templateRepo.Create(ctx, template); err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Created template %d (%s) for user %s", template.ID, template.TaskName, userID))
	resp := dto.ToTemplateResponse(template)
	return &resp, nil
}

// getOwned loads a template that the user may modify. System templates and
// other users' templates both surface as ErrNotFound.
func (s *templateService) getOwned(ctx context.Context, templateID uint, userID string) (*entity.MaintenanceTemplate, error) {
	template, err := s.templateRepo.FindByID(ctx, templateID)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, appErrors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	if template.IsSystem() || *template.OwnerID != userID {
		return nil, appErrors.ErrNotFound
	}
	return template, nil
}

// Update applies a partial patch to one of the user's templates.
func (s *templateService) Update(ctx context.Context, templateID uint, userID string, req dto.UpdateTemplateRequest) (*dto.TemplateResponse, error) {
	template, err := s.getOwned(ctx, templateID, userID)
	if err != nil {
		return nil, err
	}

	if req.TaskName != nil {
		if *req.TaskName == "" {
			return nil, fmt.Errorf("%w: task name cannot be empty", appErrors.ErrValidation)
		}
		template.TaskName = *req.TaskName
	}
	if req.Category != nil {
		template.Category = *req.Category
	}
	if req.Description != nil {
		template.Description = *req.Description
	}
	if req.IntervalMonths != nil {
		template.IntervalMonths = req.IntervalMonths
	}
	if req.IntervalKilometers != nil {
		template.IntervalKilometers = req.IntervalKilometers
	}
	if req.IntervalHours != nil {
		template.IntervalHours = req.IntervalHours
	}
	if req.CombinationPolicy != nil {
		if !req.CombinationPolicy.Valid() {
			return nil, fmt.Errorf("%w: unknown combination policy %q", appErrors.ErrValidation, *req.CombinationPolicy)
		}
		template.CombinationPolicy = *req.CombinationPolicy
	}
	if req.ReminderDaysBefore != nil {
		template.ReminderDaysBefore = req.ReminderDaysBefore
	}
	if req.ReminderKmBefore != nil {
		template.ReminderKmBefore = req.ReminderKmBefore
	}
	if req.ReminderHoursBefore != nil {
		template.ReminderHoursBefore = req.ReminderHoursBefore
	}

	if err := s.templateRepo.Update(ctx, template); err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	resp := dto.ToTemplateResponse(template)
	return &resp, nil
}

// Delete removes one of the user's templates.
func (s *templateService) Delete(ctx context.Context, templateID uint, userID string) error {
	template, err := s.getOwned(ctx, templateID, userID)
	if err != nil {
		return err
	}
	if err := s.templateRepo.Delete(ctx, template.ID); err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Deleted template %d for user %s", template.ID, userID))
	return nil
}
