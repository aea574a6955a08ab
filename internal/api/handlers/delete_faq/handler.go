package delete_faq

import (
	"errors"
	"net/http"

	"github.com/m04kA/booking-platform/internal/api/handlers"
	"github.com/m04kA/booking-platform/internal/api/middleware"
	"github.com/m04kA/booking-platform/internal/service/faqs"
)

const (
	msgMissingUserID = "No token provided"
	msgInvalidFAQID  = "Invalid faq id"
	msgFAQNotFound   = "FAQ not found"
	msgDeleted       = "FAQ deleted successfully"
)

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

// Handle DELETE /api/v1/faqs/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidFAQID)
		return
	}

	if err := h.service.Delete(r.Context(), userID, id); err != nil {
		if errors.Is(err, faqs.ErrFAQNotFound) {
			handlers.RespondNotFound(w, msgFAQNotFound)
			return
		}
		h.logger.Error("DELETE /faqs/{id} - Failed to delete faq: id=%d, user_id=%d, error=%v", id, userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /faqs/{id} - FAQ deleted: id=%d", id)
	handlers.RespondMessage(w, http.StatusOK, msgDeleted)
}
