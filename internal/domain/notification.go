package domain

import "time"

// NotificationType kind of email notification
type NotificationType string

const (
	NotificationBookingConfirmation NotificationType = "booking_confirmation"
	NotificationNewBooking          NotificationType = "new_booking"
	NotificationStatusUpdate        NotificationType = "booking_status_update"
	NotificationReminder            NotificationType = "booking_reminder"
)

// RecipientType who receives the notification
type RecipientType string

const (
	RecipientCustomer RecipientType = "customer"
	RecipientProvider RecipientType = "provider"
)

// NotificationStatus delivery outcome
type NotificationStatus string

const (
	NotificationSent   NotificationStatus = "sent"
	NotificationLogged NotificationStatus = "logged" // no transport available, content only logged
	NotificationFailed NotificationStatus = "failed"
)

// EmailNotification record of a dispatched email
type EmailNotification struct {
	ID               int64
	BookingID        int64
	RecipientEmail   string
	RecipientType    RecipientType
	NotificationType NotificationType
	Subject          string
	Body             string
	Channel          string
	Status           NotificationStatus
	Error            *string
	SentAt           time.Time
}
