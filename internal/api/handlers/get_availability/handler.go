package get_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/booking-platform/internal/api/handlers"
	"github.com/m04kA/booking-platform/internal/api/middleware"
	"github.com/m04kA/booking-platform/internal/service/availability"
	"github.com/m04kA/booking-platform/internal/service/availability/models"
)

const (
	msgMissingUserID    = "No token provided"
	msgProviderNotFound = "Provider profile not found"
)

// Response тело ответа
type Response struct {
	Availability []models.WeeklySlotResponse `json:"availability"`
}

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

// Handle GET /api/v1/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	slots, err := h.service.GetWeeklyAvailability(r.Context(), userID)
	if err != nil {
		if errors.Is(err, availability.ErrProviderNotFound) {
			handlers.RespondNotFound(w, msgProviderNotFound)
			return
		}
		h.logger.Error("GET /availability - Failed to get schedule: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Response{Availability: slots})
}
