package dto

import (
	"time"

	"fleetcare/internal/domain/constant"
	"fleetcare/internal/domain/entity"
)

// ReminderResponse is the DTO for sending reminder information to the client.
type ReminderResponse struct {
	ID            uint                    `json:"id"`
	ScheduleID    uint                    `json:"schedule_id"`
	Status        constant.ReminderStatus `json:"status"`
	Type          constant.ReminderType   `json:"type"`
	Message       string                  `json:"message"`
	ScheduledDate time.Time               `json:"scheduled_date"`
	SentAt        *time.Time              `json:"sent_at,omitempty"`
	DismissedAt   *time.Time              `json:"dismissed_at,omitempty"`
}

// ToReminderResponse converts an entity.Reminder to a ReminderResponse DTO.
func ToReminderResponse(r *entity.Reminder) ReminderResponse {
	return ReminderResponse{
		ID:            r.ID,
		ScheduleID:    r.ScheduleID,
		Status:        r.Status,
		Type:          r.Type,
		Message:       r.Message,
		ScheduledDate: r.ScheduledDate,
		SentAt:        r.SentAt,
		DismissedAt:   r.DismissedAt,
	}
}

// ToReminderResponseList converts a slice of reminders to DTOs.
func ToReminderResponseList(reminders []*entity.Reminder) []ReminderResponse {
	list := make([]ReminderResponse, len(reminders))
	for i, r := range reminders {
		list[i] = ToReminderResponse(r)
	}
	return list
}
