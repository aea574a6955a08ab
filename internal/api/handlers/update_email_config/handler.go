package update_email_config

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
	msgUpdated            = "Email configuration updated successfully"
)

// Response тело ответа
type Response struct {
	Message     string                      `json:"message"`
	EmailConfig *models.EmailConfigResponse `json:"email_config"`
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

// Handle PUT /api/v1/providers/me/email-config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.UpdateEmailConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /providers/me/email-config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	cfg, err := h.service.UpdateEmailConfig(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, providers.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.ErrorDetail(err, providers.ErrInvalidInput, models.ErrValidation))

		case errors.Is(err, providers.ErrProviderNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		default:
			// текст ошибки может содержать детали шифрования, клиенту не отдаём
			h.logger.Error("PUT /providers/me/email-config - Failed: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /providers/me/email-config - Updated: user_id=%d, type=%s", userID, req.ServiceType)
	handlers.RespondJSON(w, http.StatusOK, Response{Message: msgUpdated, EmailConfig: cfg})
}
