package dto

import (
	"time"

	"fleetcare/internal/domain/constant"
	"fleetcare/internal/domain/entity"
)

// CreateNotificationRequest is the DTO for creating a notification directly,
// without a backing reminder.
type CreateNotificationRequest struct {
	UserID      string           `json:"user_id"`
	Type        string           `json:"type"`
	Channel     constant.Channel `json:"channel"`
	Title       string           `json:"title"`
	Message     string           `json:"message"`
	ActionURL   string           `json:"action_url,omitempty"`
	ScheduledAt *time.Time       `json:"scheduled_at,omitempty"`
}

// NotificationResponse is the DTO for sending notification information to
// the client.
type NotificationResponse struct {
	ID           uint                        `json:"id"`
	ReminderID   *uint                       `json:"reminder_id,omitempty"`
	Type         string                      `json:"type"`
	Channel      constant.Channel            `json:"channel"`
	Title        string                      `json:"title"`
	Message      string                      `json:"message"`
	ActionURL    string                      `json:"action_url,omitempty"`
	Status       constant.NotificationStatus `json:"status"`
	ErrorMessage string                      `json:"error_message,omitempty"`
	ScheduledAt  *time.Time                  `json:"scheduled_at,omitempty"`
	SentAt       *time.Time                  `json:"sent_at,omitempty"`
	ReadAt       *time.Time                  `json:"read_at,omitempty"`
	CreatedAt    time.Time                   `json:"created_at"`
}

// ToNotificationResponse converts an entity.Notification to a DTO.
func ToNotificationResponse(n *entity.Notification) NotificationResponse {
	return NotificationResponse{
		ID:           n.ID,
		ReminderID:   n.ReminderID,
		Type:         n.Type,
		Channel:      n.Channel,
		Title:        n.Title,
		Message:      n.Message,
		ActionURL:    n.ActionURL,
		Status:       n.Status,
		ErrorMessage: n.ErrorMessage,
		ScheduledAt:  n.ScheduledAt,
		SentAt:       n.SentAt,
		ReadAt:       n.ReadAt,
		CreatedAt:    n.CreatedAt,
	}
}

// ToNotificationResponseList converts a slice of notifications to DTOs.
func ToNotificationResponseList(notifications []*entity.Notification) []NotificationResponse {
	list := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		list[i] = ToNotificationResponse(n)
	}
	return list
}
