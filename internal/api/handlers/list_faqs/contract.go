package list_faqs

import (
	"context"

	"github.com/m04kA/booking-platform/internal/service/faqs/models"
)

type FAQService interface {
	List(ctx context.Context, userID int64) ([]models.FAQResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
