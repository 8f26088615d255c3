package service

import (
	"context"

	"fleetcare/internal/application/dto"
)

// TemplateService defines the interface for maintenance-template business
// logic. System templates (no owner) are readable by everyone and immutable
// through this service.
type TemplateService interface {
	// ListAvailable retrieves system templates plus the user's own.
	ListAvailable(ctx context.Context, userID string) ([]dto.TemplateResponse, error)
	// Create creates a template owned by the user.
	Create(ctx context.Context, userID string, req dto.CreateTemplateRequest) (*dto.TemplateResponse, error)
	// Update applies a partial patch to one of the user's templates.
	Update(ctx context.Context, templateID uint, userID string, req dto.UpdateTemplateRequest) (*dto.TemplateResponse, error)
	// Delete removes one of the user's templates. Existing schedules keep
	// their copied values; only the template reference dangles.
	Delete(ctx context.Context, templateID uint, userID string) error
}
