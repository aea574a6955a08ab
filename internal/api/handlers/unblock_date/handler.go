package unblock_date

import (
	"errors"
	"net/http"

	"github.com/m04kA/booking-platform/internal/api/handlers"
	"github.com/m04kA/booking-platform/internal/api/middleware"
	"github.com/m04kA/booking-platform/internal/service/availability"
)

const (
	msgMissingUserID    = "No token provided"
	msgInvalidBlockID   = "Invalid blocked date id"
	msgNotFound         = "Blocked date not found or unauthorized"
	msgProviderNotFound = "Provider profile not found"
	msgUnblocked        = "Date unblocked successfully"
)

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

// Handle DELETE /api/v1/availability/blocked/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Извлекаем id блокировки из URL
	blockID, err := handlers.PathInt64(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBlockID)
		return
	}

	if err := h.service.UnblockDate(r.Context(), userID, blockID); err != nil {
		switch {
		case errors.Is(err, availability.ErrBlockedDateNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, availability.ErrProviderNotFound):
			handlers.RespondNotFound(w, msgProviderNotFound)

		default:
			h.logger.Error("DELETE /availability/blocked/{id} - Failed to unblock: user_id=%d, id=%d, error=%v",
				userID, blockID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /availability/blocked/{id} - Date unblocked: user_id=%d, id=%d", userID, blockID)
	handlers.RespondMessage(w, http.StatusOK, msgUnblocked)
}
