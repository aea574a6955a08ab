package get_booking

import (
	"context"

	"github.com/m04kA/booking-platform/internal/domain"
	"github.com/m04kA/booking-platform/internal/service/bookings/models"
)

type BookingService interface {
	GetByID(ctx context.Context, id, userID int64, userType domain.UserType) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
