package repository

import (
	"context"

	"fleetcare/internal/domain/entity"
)

// TemplateRepository defines the interface for maintenance-template data.
type TemplateRepository interface {
	// FindByID retrieves a template by its ID.
	FindByID(ctx context.Context, id uint) (*entity.MaintenanceTemplate, error)
	// FindAvailable retrieves system templates plus the user's own templates.
	FindAvailable(ctx context.Context, userID string) ([]*entity.MaintenanceTemplate, error)
	// Create creates a new template.
	Create(ctx context.Context, template *entity.MaintenanceTemplate) (uint, error)
	// Update updates an existing template.
	Update(ctx context.Context, template *entity.MaintenanceTemplate) error
	// Delete deletes a template by its ID.
	Delete(ctx context.Context, id uint) error
}
