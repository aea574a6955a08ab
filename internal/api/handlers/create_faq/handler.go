package create_faq

import (
	"errors"
	"net/http"

	"github.com/m04kA/booking-platform/internal/api/handlers"
	"github.com/m04kA/booking-platform/internal/api/middleware"
	"github.com/m04kA/booking-platform/internal/service/faqs"
	"github.com/m04kA/booking-platform/internal/service/faqs/models"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgMissingUserID      = "No token provided"
	msgProviderNotFound   = "Provider profile not found. Please create a provider profile first."
	msgCreated            = "FAQ created successfully"
)

// Response тело ответа
type Response struct {
	Message string              `json:"message"`
	FAQ     *models.FAQResponse `json:"faq"`
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

// Handle POST /api/v1/faqs
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Декодируем body
	var req models.CreateFAQRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /faqs - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем сервис
	faq, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, faqs.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.ErrorDetail(err, faqs.ErrInvalidInput, models.ErrValidation))

		case errors.Is(err, faqs.ErrProviderNotFound):
			handlers.RespondNotFound(w, msgProviderNotFound)

		default:
			h.logger.Error("POST /faqs - Failed to create faq: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /faqs - FAQ created: id=%d, provider=%d", faq.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, Response{Message: msgCreated, FAQ: faq})
}
