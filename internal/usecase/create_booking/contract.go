package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/booking-platform/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// AvailabilityChecker проверка доступности момента у провайдера
type AvailabilityChecker interface {
	IsSlotAvailable(ctx context.Context, providerID int64, at time.Time) (domain.Availability, error)
}

// Notifier письма о новом бронировании
type Notifier interface {
	SendBookingCreated(ctx context.Context, b *domain.Booking) error
}

// Metrics счётчик созданных бронирований
type Metrics interface {
	IncBookingCreated(kind string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
