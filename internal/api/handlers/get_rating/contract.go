package get_rating

import (
	"context"

	"github.com/m04kA/booking-platform/internal/service/reviews/models"
)

type ReviewService interface {
	ProviderRating(ctx context.Context, providerID int64) (*models.RatingResponse, error)
	ServiceRating(ctx context.Context, serviceID int64) (*models.RatingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
