package get_booking_notifications

import (
	"context"

	"github.com/m04kA/booking-platform/internal/service/notifications/models"
)

type BookingService interface {
	ListNotifications(ctx context.Context, bookingID, providerID int64) ([]models.NotificationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
