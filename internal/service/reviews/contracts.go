package reviews

import (
	"context"

	"github.com/m04kA/booking-platform/internal/domain"
)

// ReviewRepository интерфейс репозитория отзывов
type ReviewRepository interface {
	Create(ctx context.Context, rv *domain.Review) (*domain.Review, error)
	GetByID(ctx context.Context, id int64) (*domain.Review, error)
	ListByProvider(ctx context.Context, providerID int64) ([]*domain.Review, error)
	ListByService(ctx context.Context, serviceID int64) ([]*domain.Review, error)
	RatingByProvider(ctx context.Context, providerID int64) (domain.RatingSummary, error)
	RatingByService(ctx context.Context, serviceID int64) (domain.RatingSummary, error)
	Update(ctx context.Context, id, customerID int64, rating int, comment *string) error
	Delete(ctx context.Context, id, customerID int64) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
