package update_provider

import (
	"context"

	"github.com/m04kA/booking-platform/internal/service/providers/models"
)

type ProviderService interface {
	Update(ctx context.Context, userID int64, req *models.UpdateProviderRequest) (*models.ProviderResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
