package entity

import (
	"time"

	"fleetcare/internal/domain/constant"
)

// Reminder is the engine's notice that a schedule needs owner attention.
// At most one reminder in {pending, sent} may exist per schedule.
type Reminder struct {
	ID            uint                    `gorm:"primaryKey;autoIncrement"`
	ScheduleID    uint                    `gorm:"column:schedule_id;index"`
	UserID        string                  `gorm:"column:user_id;index"`
	Status        constant.ReminderStatus `gorm:"column:status;index"`
	Type          constant.ReminderType   `gorm:"column:type"`
	Message       string                  `gorm:"column:message;type:text"`
	ScheduledDate time.Time               `gorm:"column:scheduled_date"`
	SentAt        *time.Time              `gorm:"column:sent_at"`
	DismissedAt   *time.Time              `gorm:"column:dismissed_at"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for the Reminder entity.
func (Reminder) TableName() string {
	return "reminders"
}
