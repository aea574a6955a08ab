package models

import (
	"time"

	"github.com/m04kA/booking-platform/internal/domain"
)

// NotificationResponse запись журнала уведомлений
type NotificationResponse struct {
	ID               int64     `json:"id"`
	BookingID        int64     `json:"booking_id"`
	RecipientEmail   string    `json:"recipient_email"`
	RecipientType    string    `json:"recipient_type"`
	NotificationType string    `json:"notification_type"`
	Subject          string    `json:"subject"`
	Body             string    `json:"body"`
	Channel          string    `json:"channel"`
	Status           string    `json:"status"`
	Error            *string   `json:"error,omitempty"`
	SentAt           time.Time `json:"sent_at"`
}

// FromDomainNotifications конвертирует журнал в DTO
func FromDomainNotifications(list []*domain.EmailNotification) []NotificationResponse {
	resp := make([]NotificationResponse, 0, len(list))
	for _, n := range list {
		resp = append(resp, NotificationResponse{
			ID:               n.ID,
			BookingID:        n.BookingID,
			RecipientEmail:   n.RecipientEmail,
			RecipientType:    string(n.RecipientType),
			NotificationType: string(n.NotificationType),
			Subject:          n.Subject,
			Body:             n.Body,
			Channel:          n.Channel,
			Status:           string(n.Status),
			Error:            n.Error,
			SentAt:           n.SentAt,
		})
	}
	return resp
}
