package get_email_config

import (
	"context"

	"github.com/m04kA/booking-platform/internal/service/providers/models"
)

type ProviderService interface {
	GetEmailConfig(ctx context.Context, userID int64) (*models.EmailConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
