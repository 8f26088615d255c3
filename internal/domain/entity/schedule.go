package entity

import (
	"time"

	"fleetcare/internal/domain/constant"
)

// Reminder-lead defaults applied when a schedule leaves a threshold unset.
const (
	DefaultReminderDaysBefore  = 30
	DefaultReminderKmBefore    = 1000.0
	DefaultReminderHoursBefore = 50.0
)

// MaintenanceSchedule is one tracked maintenance task on one vehicle.
//
// The three interval dimensions are independent: a schedule may configure
// zero, one, two, or all of them. The NextDue* fields are derived; they are
// recomputed from the interval and last-completed fields and never accepted
// from a client. A dimension's next-due value exists only when both its
// interval and its last-completed value are present.
type MaintenanceSchedule struct {
	ID         uint  `gorm:"primaryKey;autoIncrement"`
	VehicleID  uint  `gorm:"column:vehicle_id;index"`
	TemplateID *uint `gorm:"column:template_id"`

	TaskName    string `gorm:"column:task_name"`
	Category    string `gorm:"column:category"`
	Description string `gorm:"column:description;type:text"`

	IntervalMonths     *int     `gorm:"column:interval_months"`
	IntervalKilometers *float64 `gorm:"column:interval_kilometers"`
	IntervalHours      *float64 `gorm:"column:interval_hours"`

	CombinationPolicy constant.CombinationPolicy `gorm:"column:combination_policy"`

	LastCompletedDate    *time.Time `gorm:"column:last_completed_date"`
	LastCompletedMileage *float64   `gorm:"column:last_completed_mileage"`
	LastCompletedHours   *float64   `gorm:"column:last_completed_hours"`
	ServiceRecordID      *uint      `gorm:"column:service_record_id"`

	NextDueDate    *time.Time `gorm:"column:next_due_date;index"`
	NextDueMileage *float64   `gorm:"column:next_due_mileage"`
	NextDueHours   *float64   `gorm:"column:next_due_hours"`

	ReminderDaysBefore  *int     `gorm:"column:reminder_days_before"`
	ReminderKmBefore    *float64 `gorm:"column:reminder_km_before"`
	ReminderHoursBefore *float64 `gorm:"column:reminder_hours_before"`

	Active    bool `gorm:"column:active;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for the MaintenanceSchedule entity.
func (MaintenanceSchedule) TableName() string {
	return "maintenance_schedules"
}

// LeadDays returns the time reminder lead, falling back to the default.
func (s *MaintenanceSchedule) LeadDays() int {
	if s.ReminderDaysBefore != nil {
		return *s.ReminderDaysBefore
	}
	return DefaultReminderDaysBefore
}

// LeadKilometers returns the distance reminder lead, falling back to the default.
func (s *MaintenanceSchedule) LeadKilometers() float64 {
	if s.ReminderKmBefore != nil {
		return *s.ReminderKmBefore
	}
	return DefaultReminderKmBefore
}

// LeadHours returns the operating-hours reminder lead, falling back to the default.
func (s *MaintenanceSchedule) LeadHours() float64 {
	if s.ReminderHoursBefore != nil {
		return *s.ReminderHoursBefore
	}
	return DefaultReminderHoursBefore
}

// HasAnyDimension reports whether any interval dimension is fully configured
// (interval and last-completed value both present). A schedule with none will
// never compute a next-due value and stays permanently OK.
func (s *MaintenanceSchedule) HasAnyDimension() bool {
	if s.IntervalMonths != nil && s.LastCompletedDate != nil {
		return true
	}
	if s.IntervalKilometers != nil && s.LastCompletedMileage != nil {
		return true
	}
	if s.IntervalHours != nil && s.LastCompletedHours != nil {
		return true
	}
	return false
}
