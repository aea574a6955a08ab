package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/booking-platform/internal/service/availability/models"
)

type AvailabilityService interface {
	GetAvailableSlots(ctx context.Context, providerID int64, date time.Time) (*models.AvailableSlotsResponse, error)
	Location() *time.Location
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
