package update_review

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
	msgInvalidReviewID    = "Invalid review id"
	msgReviewNotFound     = "Review not found or unauthorized"
	msgUpdated            = "Review updated successfully"
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

// Handle PUT /api/v1/reviews/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Извлекаем id отзыва из URL
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidReviewID)
		return
	}

	var req models.UpdateReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reviews/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	review, err := h.service.Update(r.Context(), userID, id, &req)
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.ErrorDetail(err, reviews.ErrInvalidInput, models.ErrValidation))

		case errors.Is(err, reviews.ErrReviewNotFound):
			handlers.RespondNotFound(w, msgReviewNotFound)

		default:
			h.logger.Error("PUT /reviews/{id} - Failed to update review: id=%d, user_id=%d, error=%v", id, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /reviews/{id} - Review updated: id=%d, rating=%d", id, review.Rating)
	handlers.RespondJSON(w, http.StatusOK, Response{Message: msgUpdated, Review: review})
}
