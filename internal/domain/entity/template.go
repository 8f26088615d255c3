package entity

import (
	"time"

	"fleetcare/internal/domain/constant"
)

// MaintenanceTemplate carries reusable defaults copied into a schedule at
// creation time. OwnerID is nil for system templates, which are read-only.
// Templates are never themselves evaluated for due-state.
type MaintenanceTemplate struct {
	ID                 uint                       `gorm:"primaryKey;autoIncrement"`
	OwnerID            *string                    `gorm:"column:owner_id;index"`
	TaskName           string                     `gorm:"column:task_name"`
	Category           string                     `gorm:"column:category"`
	Description        string                     `gorm:"column:description;type:text"`
	IntervalMonths     *int                       `gorm:"column:interval_months"`
	IntervalKilometers *float64                   `gorm:"column:interval_kilometers"`
	IntervalHours      *float64                   `gorm:"column:interval_hours"`
	CombinationPolicy  constant.CombinationPolicy `gorm:"column:combination_policy"`
	ReminderDaysBefore *int                       `gorm:"column:reminder_days_before"`
	ReminderKmBefore   *float64                   `gorm:"column:reminder_km_before"`
	ReminderHoursBefore *float64                  `gorm:"column:reminder_hours_before"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName specifies the table name for the MaintenanceTemplate entity.
func (MaintenanceTemplate) TableName() string {
	return "maintenance_templates"
}

// IsSystem reports whether the template is system-provided (read-only).
func (t *MaintenanceTemplate) IsSystem() bool {
	return t.OwnerID == nil
}
