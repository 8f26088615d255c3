package entity

import "time"

// Vehicle is the owner directory entry the engine evaluates schedules
// against. CurrentMileage and CurrentHours are the live readings; every
// due-state computation re-reads them instead of caching.
type Vehicle struct {
	ID             uint     `gorm:"primaryKey;autoIncrement"`
	OwnerID        string   `gorm:"column:owner_id;index"`
	Name           string   `gorm:"column:name"`
	CurrentMileage float64  `gorm:"column:current_mileage"`
	CurrentHours   *float64 `gorm:"column:current_hours"` // nil for vehicles without an hour meter
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the table name for the Vehicle entity.
func (Vehicle) TableName() string {
	return "vehicles"
}
