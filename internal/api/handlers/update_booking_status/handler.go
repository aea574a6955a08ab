package update_booking_status

import (
	"errors"
	"net/http"

	"github.com/m04kA/booking-platform/internal/api/handlers"
	"github.com/m04kA/booking-platform/internal/api/middleware"
	"github.com/m04kA/booking-platform/internal/service/bookings"
	"github.com/m04kA/booking-platform/internal/service/bookings/models"
)

const (
	msgInvalidBookingID   = "Invalid booking id"
	msgInvalidRequestBody = "Invalid request body"
	msgMissingUserID      = "No token provided"
	msgStatusRequired     = "status is required"
	msgInvalidStatus      = "Invalid booking status"
	msgNotFound           = "Booking not found or unauthorized"
	msgUpdated            = "Booking status updated successfully"
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

// Handle PUT /api/v1/bookings/{bookingId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathInt64(r, "bookingId")
	if err != nil {
		h.logger.Warn("PUT /bookings/{id}/status - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	providerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Декодируем body
	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.Status == "" {
		handlers.RespondBadRequest(w, msgStatusRequired)
		return
	}

	// Переход проверяется сервисом, письмо клиенту уходит после сохранения статуса
	booking, err := h.service.UpdateStatus(r.Context(), bookingID, providerID, &req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidStatus):
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, bookings.ErrInvalidTransition):
			h.logger.Warn("PUT /bookings/{id}/status - Transition rejected: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, handlers.ErrorDetail(err))

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id}/status - Booking not found: booking_id=%d, provider_id=%d", bookingID, providerID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /bookings/{id}/status - Failed to update status: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/{id}/status - Status updated: booking_id=%d, status=%s", bookingID, booking.Status)
	handlers.RespondJSON(w, http.StatusOK, Response{Message: msgUpdated, Booking: booking})
}
