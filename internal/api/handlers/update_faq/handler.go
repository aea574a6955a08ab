package update_faq

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
	msgInvalidFAQID       = "Invalid faq id"
	msgFAQNotFound        = "FAQ not found"
	msgUpdated            = "FAQ updated successfully"
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

// Handle PUT /api/v1/faqs/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Извлекаем id из URL
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("PUT /faqs/{id} - Invalid faq ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFAQID)
		return
	}

	var req models.UpdateFAQRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /faqs/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	faq, err := h.service.Update(r.Context(), userID, id, &req)
	if err != nil {
		switch {
		case errors.Is(err, faqs.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.ErrorDetail(err, faqs.ErrInvalidInput, models.ErrValidation))

		case errors.Is(err, faqs.ErrFAQNotFound):
			handlers.RespondNotFound(w, msgFAQNotFound)

		default:
			h.logger.Error("PUT /faqs/{id} - Failed to update faq: id=%d, user_id=%d, error=%v", id, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /faqs/{id} - FAQ updated: id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, Response{Message: msgUpdated, FAQ: faq})
}
