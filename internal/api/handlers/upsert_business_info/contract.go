package upsert_business_info

import (
	"context"

	"github.com/m04kA/booking-platform/internal/service/businessinfo/models"
)

type BusinessInfoService interface {
	Upsert(ctx context.Context, userID int64, req *models.UpsertBusinessInfoRequest) (*models.BusinessInfoResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
