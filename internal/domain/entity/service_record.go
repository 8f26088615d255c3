package entity

import "time"

// ServiceRecord is a completed service event. Linking one to a schedule
// completes the schedule with the record's date/mileage/hours.
type ServiceRecord struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	VehicleID   uint      `gorm:"column:vehicle_id;index"`
	PerformedAt time.Time `gorm:"column:performed_at"`
	Mileage     float64   `gorm:"column:mileage"`
	Hours       *float64  `gorm:"column:hours"`
	Description string    `gorm:"column:description;type:text"`
	CreatedAt   time.Time
}

// TableName specifies the table name for the ServiceRecord entity.
func (ServiceRecord) TableName() string {
	return "service_records"
}
