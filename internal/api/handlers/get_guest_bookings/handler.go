package get_guest_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/booking-platform/internal/api/handlers"
	"github.com/m04kA/booking-platform/internal/service/bookings"
)

const msgEmailRequired = "Email is required"

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/public/bookings?email=
// Публичный endpoint - без авторизации, гость видит только бронирования на свой email
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		handlers.RespondBadRequest(w, msgEmailRequired)
		return
	}

	result, err := h.service.GetGuestBookings(r.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.ErrorDetail(err, bookings.ErrInvalidInput))

		default:
			h.logger.Error("GET /public/bookings - Failed to get guest bookings: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /public/bookings - Guest bookings retrieved: count=%d", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
