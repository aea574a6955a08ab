package check_availability

import (
	"net/http"
	"time"

	"github.com/m04kA/booking-platform/internal/api/handlers"
)

const (
	msgInvalidProviderID = "Invalid provider id"
	msgInvalidAt         = "at query parameter must be an RFC3339 timestamp"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/{providerId}/check?at=RFC3339
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	providerID, err := handlers.PathInt64(r, "providerId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	// Query params: at (обязательно)
	at, err := time.Parse(time.RFC3339, r.URL.Query().Get("at"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidAt)
		return
	}

	result, err := h.service.CheckSlot(r.Context(), providerID, at)
	if err != nil {
		h.logger.Error("GET /availability/{id}/check - Failed: provider_id=%d, error=%v", providerID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
