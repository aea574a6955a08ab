package list_services

import (
	"context"

	"github.com/m04kA/booking-platform/internal/service/catalog/models"
)

type CatalogService interface {
	ListByProvider(ctx context.Context, providerID int64, activeOnly bool) ([]models.ServiceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
