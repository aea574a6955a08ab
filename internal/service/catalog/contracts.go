package catalog

import (
	"context"

	"github.com/m04kA/booking-platform/internal/domain"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	Create(ctx context.Context, s *domain.Service) (*domain.Service, error)
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	ListByProvider(ctx context.Context, providerID int64, activeOnly bool) ([]*domain.Service, error)
	Update(ctx context.Context, id, providerID int64, upd domain.ServiceUpdate) error
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
