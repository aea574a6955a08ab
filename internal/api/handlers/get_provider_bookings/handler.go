package get_provider_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/booking-platform/internal/api/handlers"
	"github.com/m04kA/booking-platform/internal/api/middleware"
	"github.com/m04kA/booking-platform/internal/service/bookings"
)

const (
	msgMissingUserID = "No token provided"
	msgInvalidParams = "Invalid query parameters"
)

type Handler struct {
	service  BookingService
	location *time.Location
	logger   Logger
}

func NewHandler(service BookingService, location *time.Location, logger Logger) *Handler {
	return &Handler{
		service:  service,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/bookings/provider
// Query params: status, start_date, end_date, include_inactive (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	providerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings/provider - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Даты фильтра в часовом поясе платформы
	q := r.URL.Query()
	serviceReq, err := ToServiceRequest(providerID, q.Get("status"), q.Get("start_date"), q.Get("end_date"),
		q.Get("include_inactive"), h.location)
	if err != nil {
		h.logger.Warn("GET /bookings/provider - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.GetProviderBookings(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings/provider - Invalid filter: provider_id=%d, error=%v", providerID, err)
			handlers.RespondBadRequest(w, handlers.ErrorDetail(err, bookings.ErrInvalidInput))

		default:
			h.logger.Error("GET /bookings/provider - Failed to get bookings: provider_id=%d, error=%v", providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/provider - Bookings retrieved: provider_id=%d, count=%d", providerID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
