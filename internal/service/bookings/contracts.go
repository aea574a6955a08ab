package bookings

import (
	"context"

	"github.com/m04kA/booking-platform/internal/domain"
	notificationModels "github.com/m04kA/booking-platform/internal/service/notifications/models"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id, providerID int64, status domain.BookingStatus) error
	CancelByCustomer(ctx context.Context, id, customerID int64) error
}

// Notifier отправка и журнал писем по бронированию
type Notifier interface {
	SendStatusUpdate(ctx context.Context, b *domain.Booking, oldStatus, newStatus domain.BookingStatus) error
	ListByBooking(ctx context.Context, bookingID int64) ([]notificationModels.NotificationResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
