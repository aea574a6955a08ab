package update_provider

import (
	"errors"
	"net/http"

	"github.com/m04kA/booking-platform/internal/api/handlers"
	"github.com/m04kA/booking-platform/internal/api/middleware"
	"github.com/m04kA/booking-platform/internal/service/providers"
	"github.com/m04kA/booking-platform/internal/service/providers/models"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgMissingUserID      = "No token provided"
	msgNotFound           = "Provider profile not found"
	msgUpdated            = "Provider updated successfully"
)

// Response тело ответа
type Response struct {
	Message  string                   `json:"message"`
	Provider *models.ProviderResponse `json:"provider"`
}

type Handler struct {
	service ProviderService
	logger  Logger
}

func NewHandler(service ProviderService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/providers/me
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.UpdateProviderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /providers/me - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	provider, err := h.service.Update(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, providers.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.ErrorDetail(err, providers.ErrInvalidInput, models.ErrValidation))

		case errors.Is(err, providers.ErrProviderNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /providers/me - Failed to update provider: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /providers/me - Provider updated: user_id=%d", userID)
	handlers.RespondJSON(w, http.StatusOK, Response{Message: msgUpdated, Provider: provider})
}
