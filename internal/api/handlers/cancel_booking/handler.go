package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/booking-platform/internal/api/handlers"
	"github.com/m04kA/booking-platform/internal/api/middleware"
	"github.com/m04kA/booking-platform/internal/service/bookings"
	"github.com/m04kA/booking-platform/internal/service/bookings/models"
)

const (
	msgInvalidBookingID = "Invalid booking id"
	msgMissingUserID    = "No token provided"
	msgNotFound         = "Booking not found or unauthorized"
	msgCannotCancel     = "Booking is already cancelled"
	msgCancelled        = "Booking cancelled successfully"
)

// Response тело ответа
type Response struct {
	Message string                  `json:"message"`
	Booking *models.BookingResponse `json:"booking"`
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

// Handle PUT /api/v1/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем bookingId из URL
	bookingID, err := handlers.PathInt64(r, "bookingId")
	if err != nil {
		h.logger.Warn("PUT /bookings/{id}/cancel - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	customerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Отменяем бронирование
	booking, err := h.service.Cancel(r.Context(), bookingID, customerID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id}/cancel - Booking not found: booking_id=%d, customer_id=%d", bookingID, customerID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrCannotCancel):
			h.logger.Warn("PUT /bookings/{id}/cancel - Already cancelled: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgCannotCancel)

		default:
			h.logger.Error("PUT /bookings/{id}/cancel - Failed to cancel booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/{id}/cancel - Booking cancelled: booking_id=%d, customer_id=%d", bookingID, customerID)
	handlers.RespondJSON(w, http.StatusOK, Response{Message: msgCancelled, Booking: booking})
}
