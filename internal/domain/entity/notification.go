package entity

import (
	"time"

	"fleetcare/internal/domain/constant"
)

// Notification is a channel-addressed deliverable derived from a reminder,
// or created directly for non-maintenance events. ReminderID is a weak
// reference: notifications outlive a deleted reminder.
type Notification struct {
	ID           uint                        `gorm:"primaryKey;autoIncrement"`
	UserID       string                      `gorm:"column:user_id;index"`
	ReminderID   *uint                       `gorm:"column:reminder_id"`
	Type         string                      `gorm:"column:type"`
	Channel      constant.Channel            `gorm:"column:channel"`
	Title        string                      `gorm:"column:title"`
	Message      string                      `gorm:"column:message;type:text"`
	ActionURL    string                      `gorm:"column:action_url"`
	Status       constant.NotificationStatus `gorm:"column:status;index"`
	ErrorMessage string                      `gorm:"column:error_message"`
	ScheduledAt  *time.Time                  `gorm:"column:scheduled_at"` // nil means due for immediate dispatch
	SentAt       *time.Time                  `gorm:"column:sent_at"`
	ReadAt       *time.Time                  `gorm:"column:read_at"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for the Notification entity.
func (Notification) TableName() string {
	return "notifications"
}
