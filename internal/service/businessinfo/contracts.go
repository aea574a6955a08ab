package businessinfo

import (
	"context"

	"github.com/m04kA/booking-platform/internal/domain"
)

// BusinessInfoRepository интерфейс репозитория информации о бизнесе
type BusinessInfoRepository interface {
	Upsert(ctx context.Context, info *domain.BusinessInfo) (*domain.BusinessInfo, error)
	Get(ctx context.Context, providerID int64) (*domain.BusinessInfo, error)
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
