package get_booking

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
	msgNotFound         = "Booking not found"
	msgMissingUserID    = "No token provided"
)

// Response тело ответа
type Response struct {
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

// Handle GET /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathInt64(r, "bookingId")
	if err != nil {
		h.logger.Warn("GET /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	// Получаем пользователя из контекста (через middleware Auth)
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings/{id} - Missing user")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Сервис сам проверит, что бронирование принадлежит пользователю
	booking, err := h.service.GetByID(r.Context(), bookingID, user.ID, user.Type)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id} - Booking not found: booking_id=%d, user_id=%d", bookingID, user.ID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /bookings/{id} - Failed to get booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{id} - Booking retrieved successfully: booking_id=%d, user_id=%d", bookingID, user.ID)
	handlers.RespondJSON(w, http.StatusOK, Response{Booking: booking})
}
