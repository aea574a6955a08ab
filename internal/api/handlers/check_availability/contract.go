package check_availability

import (
	"context"
	"time"

	"github.com/m04kA/booking-platform/internal/service/availability/models"
)

type AvailabilityService interface {
	CheckSlot(ctx context.Context, providerID int64, at time.Time) (*models.AvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
