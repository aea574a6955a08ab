package create_provider

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
	msgExists             = "Provider profile already exists"
	msgCreated            = "Provider created successfully"
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

// Handle POST /api/v1/providers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.CreateProviderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /providers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	provider, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, providers.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.ErrorDetail(err, providers.ErrInvalidInput, models.ErrValidation))

		case errors.Is(err, providers.ErrProviderExists):
			h.logger.Warn("POST /providers - Profile already exists: user_id=%d", userID)
			handlers.RespondConflict(w, msgExists)

		default:
			h.logger.Error("POST /providers - Failed to create provider: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /providers - Provider created: user_id=%d, provider_id=%d", userID, provider.ID)
	handlers.RespondJSON(w, http.StatusCreated, Response{Message: msgCreated, Provider: provider})
}
