package block_date

import (
	"context"

	"github.com/m04kA/booking-platform/internal/service/availability/models"
)

type AvailabilityService interface {
	BlockDate(ctx context.Context, userID int64, req *models.BlockDateRequest) (*models.BlockedDateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
