package delete_review

import (
	"errors"
	"net/http"

	"github.com/m04kA/booking-platform/internal/api/handlers"
	"github.com/m04kA/booking-platform/internal/api/middleware"
	"github.com/m04kA/booking-platform/internal/service/reviews"
)

const (
	msgMissingUserID   = "No token provided"
	msgInvalidReviewID = "Invalid review id"
	msgReviewNotFound  = "Review not found or unauthorized"
	msgDeleted         = "Review deleted successfully"
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

// Handle DELETE /api/v1/reviews/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidReviewID)
		return
	}

	if err := h.service.Delete(r.Context(), userID, id); err != nil {
		if errors.Is(err, reviews.ErrReviewNotFound) {
			handlers.RespondNotFound(w, msgReviewNotFound)
			return
		}
		h.logger.Error("DELETE /reviews/{id} - Failed to delete review: id=%d, user_id=%d, error=%v", id, userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /reviews/{id} - Review deleted: id=%d", id)
	handlers.RespondMessage(w, http.StatusOK, msgDeleted)
}
