package update_faq

import (
	"context"

	"github.com/m04kA/booking-platform/internal/service/faqs/models"
)

type FAQService interface {
	Update(ctx context.Context, userID, id int64, req *models.UpdateFAQRequest) (*models.FAQResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
