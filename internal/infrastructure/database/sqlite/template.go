package sqlite

import (
	"context"
	"errors"
	"fmt"

	"fleetcare/internal/domain/entity"
	"fleetcare/internal/domain/repository"

	"gorm.io/gorm"
)

type templateRepository struct {
	db *gorm.DB
}

// NewTemplateRepository creates a new instance of TemplateRepository.
func NewTemplateRepository(db *gorm.DB) repository.TemplateRepository {
	return &templateRepository{db: db}
}

// FindByID retrieves a template by its ID.
func (r *templateRepository) FindByID(ctx context.Context, id uint) (*entity.MaintenanceTemplate, error) {
	var template entity.MaintenanceTemplate
	if err := r.db.WithContext(ctx).First(&template, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("template %d not found: %w", id, err)
		}
		return nil, fmt.Errorf("🔴 ERROR: failed to find template %d: %w", id, err)
	}
	return &template, nil
}

// FindAvailable retrieves system templates plus the user's own templates.
func (r *templateRepository) FindAvailable(ctx context.Context, userID string) ([]*entity.MaintenanceTemplate, error) {
	var templates []*entity.MaintenanceTemplate
	if err := r.db.WithContext(ctx).Where("owner_id IS NULL OR owner_id = ?", userID).Order("task_name asc").Find(&templates).Error; err != nil {
		return nil, fmt.Errorf("🔴 ERROR: failed to find templates for user %s: %w", userID, err)
	}
	return templates, nil
}

// Create creates a new template.
func (r *templateRepository) Create(ctx context.Context, template *entity.MaintenanceTemplate) (uint, error) {
	if err := r.db.WithContext(ctx).Create(template).Error; err != nil {
		return 0, fmt.Errorf("🔴 ERROR: failed to create template %q: %w", template.TaskName, err)
	}
	return template.ID, nil
}

// Update updates an existing template.
func (r *templateRepository) Update(ctx context.Context, template *entity.MaintenanceTemplate) error {
	if err := r.db.WithContext(ctx).Save(template).Error; err != nil {
		return fmt.Errorf("🔴 ERROR: failed to update template %d: %w", template.ID, err)
	}
	return nil
}

// Delete deletes a template by its ID.
func (r *templateRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&entity.MaintenanceTemplate{}, id).Error; err != nil {
		return fmt.Errorf("🔴 ERROR: failed to delete template %d: %w", id, err)
	}
	return nil
}
