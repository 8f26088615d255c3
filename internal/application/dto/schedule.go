package dto

import (
	"time"

	"fleetcare/internal/domain/constant"
	"fleetcare/internal/domain/entity"
	"fleetcare/internal/domain/interval"
)

// CreateScheduleRequest is the DTO for creating a maintenance schedule.
// Optional fields left nil fall back to the referenced template's defaults;
// fields supplied here win over the template.
type CreateScheduleRequest struct {
	VehicleID            uint                        `json:"vehicle_id"`
	TemplateID           *uint                       `json:"template_id,omitempty"`
	TaskName             *string                     `json:"task_name,omitempty"`
	Category             *string                     `json:"category,omitempty"`
	Description          *string                     `json:"description,omitempty"`
	IntervalMonths       *int                        `json:"interval_months,omitempty"`
	IntervalKilometers   *float64                    `json:"interval_kilometers,omitempty"`
	IntervalHours        *float64                    `json:"interval_hours,omitempty"`
	CombinationPolicy    *constant.CombinationPolicy `json:"combination_policy,omitempty"`
	LastCompletedDate    *time.Time                  `json:"last_completed_date,omitempty"`
	LastCompletedMileage *float64                    `json:"last_completed_mileage,omitempty"`
	LastCompletedHours   *float64                    `json:"last_completed_hours,omitempty"`
	ReminderDaysBefore   *int                        `json:"reminder_days_before,omitempty"`
	ReminderKmBefore     *float64                    `json:"reminder_km_before,omitempty"`
	ReminderHoursBefore  *float64                    `json:"reminder_hours_before,omitempty"`
}

// UpdateScheduleRequest is the DTO for a partial schedule update. Only
// present fields are applied.
type UpdateScheduleRequest struct {
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
	Active              *bool                       `json:"active,omitempty"`
}

// CompleteScheduleRequest is the DTO for recording a completed task.
// CompletedDate defaults to now when omitted.
type CompleteScheduleRequest struct {
	CompletedDate   *time.Time `json:"completed_date,omitempty"`
	Mileage         *float64   `json:"mileage,omitempty"`
	Hours           *float64   `json:"hours,omitempty"`
	ServiceRecordID *uint      `json:"service_record_id,omitempty"`
}

// ScheduleResponse is the DTO for returning a schedule with its derived
// due-state populated.
type ScheduleResponse struct {
	ID                 uint                       `json:"id"`
	VehicleID          uint                       `json:"vehicle_id"`
	TemplateID         *uint                      `json:"template_id,omitempty"`
	TaskName           string                     `json:"task_name"`
	Category           string                     `json:"category"`
	Description        string                     `json:"description,omitempty"`
	IntervalMonths     *int                       `json:"interval_months,omitempty"`
	IntervalKilometers *float64                   `json:"interval_kilometers,omitempty"`
	IntervalHours      *float64                   `json:"interval_hours,omitempty"`
	CombinationPolicy  constant.CombinationPolicy `json:"combination_policy"`
	LastCompletedDate  *time.Time                 `json:"last_completed_date,omitempty"`
	NextDueDate        *time.Time                 `json:"next_due_date,omitempty"`
	NextDueMileage     *float64                   `json:"next_due_mileage,omitempty"`
	NextDueHours       *float64                   `json:"next_due_hours,omitempty"`
	Active             bool                       `json:"active"`
	Status             constant.DueStatus         `json:"status"`
	DaysRemaining      *int                       `json:"days_remaining,omitempty"`
	DistanceRemaining  *float64                   `json:"distance_remaining,omitempty"`
	HoursRemaining     *float64                   `json:"hours_remaining,omitempty"`
}

// ToScheduleResponse converts a schedule plus its evaluated due-state to a DTO.
func ToScheduleResponse(s *entity.MaintenanceSchedule, status constant.DueStatus, rem interval.Remaining) ScheduleResponse {
	return ScheduleResponse{
		ID:                 s.ID,
		VehicleID:          s.VehicleID,
		TemplateID:         s.TemplateID,
		TaskName:           s.TaskName,
		Category:           s.Category,
		Description:        s.Description,
		IntervalMonths:     s.IntervalMonths,
		IntervalKilometers: s.IntervalKilometers,
		IntervalHours:      s.IntervalHours,
		CombinationPolicy:  s.CombinationPolicy,
		LastCompletedDate:  s.LastCompletedDate,
		NextDueDate:        s.NextDueDate,
		NextDueMileage:     s.NextDueMileage,
		NextDueHours:       s.NextDueHours,
		Active:             s.Active,
		Status:             status,
		DaysRemaining:      rem.Days,
		DistanceRemaining:  rem.Distance,
		HoursRemaining:     rem.Hours,
	}
}
