package list_reviews

import (
	"net/http"

	"github.com/m04kA/booking-platform/internal/api/handlers"
	"github.com/m04kA/booking-platform/internal/service/reviews/models"
)

const (
	msgInvalidProviderID = "Invalid provider id"
	msgInvalidServiceID  = "Invalid service id"
)

// Response тело ответа
type Response struct {
	Reviews []models.ReviewResponse `json:"reviews"`
}

type Handler struct {
	service ReviewService
	logger  Logger
}

func NewHandler(service ReviewService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleProvider GET /api/v1/reviews/provider/{providerId}
// Публичный endpoint - без авторизации
func (h *Handler) HandleProvider(w http.ResponseWriter, r *http.Request) {
	providerID, err := handlers.PathInt64(r, "providerId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	list, err := h.service.ListByProvider(r.Context(), providerID)
	if err != nil {
		h.logger.Error("GET /reviews/provider/{id} - Failed to list reviews: provider_id=%d, error=%v", providerID, err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, Response{Reviews: list})
}

// HandleService GET /api/v1/reviews/service/{serviceId}
// Публичный endpoint - без авторизации
func (h *Handler) HandleService(w http.ResponseWriter, r *http.Request) {
	serviceID, err := handlers.PathInt64(r, "serviceId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	list, err := h.service.ListByService(r.Context(), serviceID)
	if err != nil {
		h.logger.Error("GET /reviews/service/{id} - Failed to list reviews: service_id=%d, error=%v", serviceID, err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, Response{Reviews: list})
}
