package list_faqs

import (
	"errors"
	"net/http"

	"github.com/m04kA/booking-platform/internal/api/handlers"
	"github.com/m04kA/booking-platform/internal/api/middleware"
	"github.com/m04kA/booking-platform/internal/service/faqs"
	"github.com/m04kA/booking-platform/internal/service/faqs/models"
)

const (
	msgMissingUserID    = "No token provided"
	msgProviderNotFound = "Provider profile not found"
)

// Response тело ответа
type Response struct {
	FAQs []models.FAQResponse `json:"faqs"`
}

type Handler struct {
	service FAQService
	logger  Logger
}

func NewHandler(service FAQService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/faqs
// Провайдер видит и скрытые вопросы
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	list, err := h.service.List(r.Context(), userID)
	if err != nil {
		if errors.Is(err, faqs.ErrProviderNotFound) {
			handlers.RespondNotFound(w, msgProviderNotFound)
			return
		}
		h.logger.Error("GET /faqs - Failed to list faqs: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Response{FAQs: list})
}
