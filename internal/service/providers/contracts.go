package providers

import (
	"context"

	"github.com/m04kA/booking-platform/internal/domain"
)

// ProviderRepository интерфейс репозитория провайдеров
type ProviderRepository interface {
	Create(ctx context.Context, p *domain.Provider) (*domain.Provider, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Provider, error)
	Update(ctx context.Context, userID int64, upd domain.ProviderUpdate) error
	UpdateEmailConfig(ctx context.Context, userID int64, cfg domain.EmailConfig) error
}

// Encrypter шифрует пароль почтового ящика перед сохранением
type Encrypter interface {
	Encrypt(plain string) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
