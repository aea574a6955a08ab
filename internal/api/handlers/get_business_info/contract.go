package get_business_info

import (
	"context"

	"github.com/m04kA/booking-platform/internal/service/businessinfo/models"
)

type BusinessInfoService interface {
	Get(ctx context.Context, userID int64) (*models.BusinessInfoResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
