package list_blocked_dates

import (
	"context"
	"time"

	"github.com/m04kA/booking-platform/internal/service/availability/models"
)

type AvailabilityService interface {
	ListBlockedDates(ctx context.Context, userID int64, start, end time.Time) ([]models.BlockedDateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
