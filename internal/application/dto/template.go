package dto

import (
	"fleetcare/internal/domain/constant"
	"fleetcare/internal/domain/entity"
)

// CreateTemplateRequest is the DTO for creating a user-owned template.
type CreateTemplateRequest struct {
	TaskName            string                      `json:"task_name"`
	Category            string                      `json:"category,omitempty"`
	Description         string                      `json:"description,omitempty"`
	IntervalMonths      *int                        `json:"interval_months,omitempty"`
	IntervalKilometers  *float64                    `json:"interval_kilometers,omitempty"`
	IntervalHours       *float64                    `json:"interval_hours,omitempty"`
	CombinationPolicy   *constant.CombinationPolicy `json:"combination_policy,omitempty"`
	ReminderDaysBefore  *int                        `json:"reminder_days_before,omitempty"`
	ReminderKmBefore    *float64                    `json:"reminder_km_before,omitempty"`
	ReminderHoursBefore *float64                    `json:"reminder_hours_before,omitempty"`
}

// UpdateTemplateRequest is the DTO for a partial template update.
type UpdateTemplateRequest struct {
	TaskName            *string                     `json:"task_name,omitempty"`
	Category            *string                     `json:"category,omitempty"`
	Description         *string                     `json:"description,omitempty"`
	IntervalMonths      *int                        `json:"interval_months,omitempty"`
	IntervalKilometers  *float64                    `json:"interval_kilometers,omitempty"`
	IntervalHours       *float64                    `json:"interval_hours,omitempty"`
	CombinationPolicy   *constant.CombinationPolicy `json:"combination_policy,omitempty"`
	ReminderDaysBefore  *int                        `json:"reminder_days_before,omitempty"`
	ReminderKmBefore    *float64                    `json:"reminder_km_before,omitempty"`
	ReminderHoursBefore *float64                    `json:"reminder_hours_before,omitempty"`
}

// TemplateResponse is the DTO for sending template information to the client.
type TemplateResponse struct {
	ID                  uint                       `json:"id"`
	System              bool                       `json:"system"`
	TaskName            string                     `json:"task_name"`
	Category            string                     `json:"category,omitempty"`
	Description         string                     `json:"description,omitempty"`
	IntervalMonths      *int                       `json:"interval_months,omitempty"`
	IntervalKilometers  *float64                   `json:"interval_kilometers,omitempty"`
	IntervalHours       *float64                   `json:"interval_hours,omitempty"`
	CombinationPolicy   constant.CombinationPolicy `json:"combination_policy"`
	ReminderDaysBefore  *int                       `json:"reminder_days_before,omitempty"`
	ReminderKmBefore    *float64                   `json:"reminder_km_before,omitempty"`
	ReminderHoursBefore *float64                   `json:"reminder_hours_before,omitempty"`
}

// ToTemplateResponse converts an entity.MaintenanceTemplate to a DTO.
func ToTemplateResponse(t *entity.MaintenanceTemplate) TemplateResponse {
	return TemplateResponse{
		ID:                  t.ID,
		System:              t.IsSystem(),
		TaskName:            t.TaskName,
		Category:            t.Category,
		Description:         t.Description,
		IntervalMonths:      t.IntervalMonths,
		IntervalKilometers:  t.IntervalKilometers,
		IntervalHours:       t.IntervalHours,
		CombinationPolicy:   t.CombinationPolicy,
		ReminderDaysBefore:  t.ReminderDaysBefore,
		ReminderKmBefore:    t.ReminderKmBefore,
		ReminderHoursBefore: t.ReminderHoursBefore,
	}
}

// ToTemplateResponseList converts a slice of templates to DTOs.
func ToTemplateResponseList(templates []*entity.MaintenanceTemplate) []TemplateResponse {
	list := make([]TemplateResponse, len(templates))
	for i, t := range templates {
		list[i] = ToTemplateResponse(t)
	}
	return list
}
