package set_availability

import (
	"context"

	"github.com/m04kA/booking-platform/internal/service/availability/models"
)

type AvailabilityService interface {
	SetWeeklyAvailability(ctx context.Context, userID int64, req *models.SetWeeklyRequest) ([]models.WeeklySlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
