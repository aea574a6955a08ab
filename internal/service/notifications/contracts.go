package notifications

import (
	"context"

	"github.com/m04kA/booking-platform/internal/domain"
	"github.com/m04kA/booking-platform/internal/integrations/mailer"
)

// NotificationRepository интерфейс журнала уведомлений
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.EmailNotification) (*domain.EmailNotification, error)
	ListByBooking(ctx context.Context, bookingID int64) ([]*domain.EmailNotification, error)
	Exists(ctx context.Context, bookingID int64, notificationType domain.NotificationType) (bool, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// ProviderRepository интерфейс репозитория провайдеров
type ProviderRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Provider, error)
}

// Decrypter расшифровывает пароль почтового ящика провайдера
type Decrypter interface {
	Decrypt(ciphertext string) (string, bool)
}

// Sender транспорт доставки писем
type Sender interface {
	Send(ctx context.Context, msg *mailer.Message) error
	Channel() string
}

// Metrics счётчик отправленных писем
type Metrics interface {
	IncEmail(channel, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
