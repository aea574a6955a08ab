package availability

import (
	"context"
	"time"

	"github.com/m04kA/booking-platform/internal/domain"
)

// AvailabilityRepository интерфейс репозитория расписания и блокировок
type AvailabilityRepository interface {
	ListWeekly(ctx context.Context, providerID int64) ([]*domain.WeeklySlot, error)
	ListAvailableForDay(ctx context.Context, providerID int64, dayOfWeek int) ([]*domain.WeeklySlot, error)
	DeleteWeekly(ctx context.Context, providerID int64) error
	CreateWeekly(ctx context.Context, slot *domain.WeeklySlot) (*domain.WeeklySlot, error)

	CreateBlockedDate(ctx context.Context, blocked *domain.BlockedDate) (*domain.BlockedDate, error)
	IsDateBlocked(ctx context.Context, providerID int64, date time.Time) (bool, error)
	ListBlockedDates(ctx context.Context, providerID int64, start, end time.Time) ([]*domain.BlockedDate, error)
	DeleteBlockedDate(ctx context.Context, providerID, blockID int64) error
}

// BookingRepository интерфейс репозитория бронирований (только чтение)
type BookingRepository interface {
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// ProviderRepository интерфейс репозитория провайдеров
type ProviderRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Provider, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
