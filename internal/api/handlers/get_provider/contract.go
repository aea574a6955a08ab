package get_provider

import (
	"context"

	"github.com/m04kA/booking-platform/internal/service/providers/models"
)

type ProviderService interface {
	GetByUserID(ctx context.Context, userID int64) (*models.ProviderResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
