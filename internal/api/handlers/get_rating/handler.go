package get_rating

import (
	"net/http"

	"github.com/m04kA/booking-platform/internal/api/handlers"
	"github.com/m04kA/booking-platform/internal/service/reviews/models"
)

const (
	msgInvalidProviderID = "Invalid provider id"
	msgInvalidServiceID  = "Invalid service id"
)

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

// HandleProvider GET /api/v1/reviews/provider/{providerId}/rating
func (h *Handler) HandleProvider(w http.ResponseWriter, r *http.Request) {
	providerID, err := handlers.PathInt64(r, "providerId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	rating, err := h.service.ProviderRating(r.Context(), providerID)
	h.respond(w, rating, err, "provider", providerID)
}

// HandleService GET /api/v1/reviews/service/{serviceId}/rating
func (h *Handler) HandleService(w http.ResponseWriter, r *http.Request) {
	serviceID, err := handlers.PathInt64(r, "serviceId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	rating, err := h.service.ServiceRating(r.Context(), serviceID)
	h.respond(w, rating, err, "service", serviceID)
}

func (h *Handler) respond(w http.ResponseWriter, rating *models.RatingResponse, err error, kind string, id int64) {
	if err != nil {
		h.logger.Error("GET /reviews/%s/{id}/rating - Failed to get rating: id=%d, error=%v", kind, id, err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, rating)
}
