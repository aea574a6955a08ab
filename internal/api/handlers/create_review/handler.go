package create_review

import (
	"errors"
	"net/http"

	"github.com/m04kA/booking-platform/internal/api/handlers"
	"github.com/m04kA/booking-platform/internal/api/middleware"
	"github.com/m04kA/booking-platform/internal/service/reviews"
	"github.com/m04kA/booking-platform/internal/service/reviews/models"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgMissingUserID      = "No token provided"
	msgBookingNotFound    = "Booking not found or unauthorized"
	msgNotCompleted       = "Can only review completed bookings"
	msgReviewExists       = "Review already exists for this booking"
	msgCreated            = "Review created successfully"
)

// Response тело ответа
type Response struct {
	Message string                 `json:"message"`
	Review  *models.ReviewResponse `json:"review"`
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

// Handle POST /api/v1/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Декодируем body
	var req models.CreateReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reviews - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем сервис
	review, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		// Обработка ошибок сервиса
		switch {
		case errors.Is(err, reviews.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.ErrorDetail(err, reviews.ErrInvalidInput, models.ErrValidation))

		case errors.Is(err, reviews.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, reviews.ErrNotCompleted):
			handlers.RespondBadRequest(w, msgNotCompleted)

		case errors.Is(err, reviews.ErrReviewExists):
			handlers.RespondConflict(w, msgReviewExists)

		default:
			h.logger.Error("POST /reviews - Failed to create review: user_id=%d, booking_id=%d, error=%v",
				userID, req.BookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	h.logger.Info("POST /reviews - Review created: id=%d, booking_id=%d", review.ID, review.BookingID)
	handlers.RespondJSON(w, http.StatusCreated, Response{Message: msgCreated, Review: review})
}
