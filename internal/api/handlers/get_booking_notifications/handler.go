package get_booking_notifications

import (
	"errors"
	"net/http"

	"github.com/m04kA/booking-platform/internal/api/handlers"
	"github.com/m04kA/booking-platform/internal/api/middleware"
	"github.com/m04kA/booking-platform/internal/service/bookings"
	"github.com/m04kA/booking-platform/internal/service/notifications/models"
)

const (
	msgInvalidBookingID = "Invalid booking id"
	msgMissingUserID    = "No token provided"
	msgNotFound         = "Booking not found"
)

// Response тело ответа
type Response struct {
	Notifications []models.NotificationResponse `json:"notifications"`
}

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

// Handle GET /api/v1/bookings/{bookingId}/notifications
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathInt64(r, "bookingId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	providerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	list, err := h.service.ListNotifications(r.Context(), bookingID, providerID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /bookings/{id}/notifications - Failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if list == nil {
		list = []models.NotificationResponse{}
	}
	handlers.RespondJSON(w, http.StatusOK, Response{Notifications: list})
}
