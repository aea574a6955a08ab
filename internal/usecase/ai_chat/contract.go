package ai_chat

import (
	"context"

	"github.com/m04kA/booking-platform/internal/domain"
	"github.com/m04kA/booking-platform/internal/integrations/llm"
)

// ProviderRepository интерфейс репозитория провайдеров
type ProviderRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Provider, error)
}

// AvailabilityRepository интерфейс репозитория расписания
type AvailabilityRepository interface {
	ListWeekly(ctx context.Context, providerID int64) ([]*domain.WeeklySlot, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	ListByProvider(ctx context.Context, providerID int64, activeOnly bool) ([]*domain.Service, error)
}

// BusinessInfoRepository интерфейс репозитория информации о бизнесе
type BusinessInfoRepository interface {
	Get(ctx context.Context, providerID int64) (*domain.BusinessInfo, error)
}

// FAQRepository интерфейс репозитория FAQ
type FAQRepository interface {
	ListByProvider(ctx context.Context, providerID int64, activeOnly bool) ([]*domain.FAQ, error)
}

// Assistant интерфейс LLM бэкенда
type Assistant interface {
	Name() string
	Complete(ctx context.Context, system string, messages []llm.Message) (string, error)
}

// Metrics интерфейс метрик
type Metrics interface {
	IncAIRequest(backend, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
