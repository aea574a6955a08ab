package faqs

import (
	"context"

	"github.com/m04kA/booking-platform/internal/domain"
)

// FAQRepository интерфейс репозитория FAQ
type FAQRepository interface {
	Create(ctx context.Context, f *domain.FAQ) (*domain.FAQ, error)
	GetByID(ctx context.Context, id, providerID int64) (*domain.FAQ, error)
	ListByProvider(ctx context.Context, providerID int64, activeOnly bool) ([]*domain.FAQ, error)
	Update(ctx context.Context, id, providerID int64, upd domain.FAQUpdate) error
	Delete(ctx context.Context, id, providerID int64) error
}

// ProviderRepository интерфейс репозитория провайдеров
type ProviderRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Provider, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
