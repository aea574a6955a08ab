package list_reviews

import (
	"context"

	"github.com/m04kA/booking-platform/internal/service/reviews/models"
)

type ReviewService interface {
	ListByProvider(ctx context.Context, providerID int64) ([]models.ReviewResponse, error)
	ListByService(ctx context.Context, serviceID int64) ([]models.ReviewResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
