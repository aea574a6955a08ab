package get_provider

import (
	"errors"
	"net/http"

	"github.com/m04kA/booking-platform/internal/api/handlers"
	"github.com/m04kA/booking-platform/internal/api/middleware"
	"github.com/m04kA/booking-platform/internal/service/providers"
	"github.com/m04kA/booking-platform/internal/service/providers/models"
)

const (
	msgMissingUserID = "No token provided"
	msgNotFound      = "Provider profile not found"
)

// Response тело ответа
type Response struct {
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

// Handle GET /api/v1/providers/me
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	provider, err := h.service.GetByUserID(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, providers.ErrProviderNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /providers/me - Failed to get provider: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Response{Provider: provider})
}
