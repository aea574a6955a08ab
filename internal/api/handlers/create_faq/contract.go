package create_faq

import (
	"context"

	"github.com/m04kA/booking-platform/internal/service/faqs/models"
)

type FAQService interface {
	Create(ctx context.Context, userID int64, req *models.CreateFAQRequest) (*models.FAQResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
