package block_date

import (
	"errors"
	"net/http"

	"github.com/m04kA/booking-platform/internal/api/handlers"
	"github.com/m04kA/booking-platform/internal/api/middleware"
	"github.com/m04kA/booking-platform/internal/service/availability"
	"github.com/m04kA/booking-platform/internal/service/availability/models"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgMissingUserID      = "No token provided"
	msgDateRequired       = "blocked_date is required"
	msgProviderNotFound   = "Provider profile not found"
	msgBlocked            = "Date blocked successfully"
)

// Response тело ответа
type Response struct {
	Message     string                      `json:"message"`
	BlockedDate *models.BlockedDateResponse `json:"blocked_date"`
}

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

// Handle POST /api/v1/availability/blocked
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Декодируем body
	var req models.BlockDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability/blocked - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.Date == "" {
		handlers.RespondBadRequest(w, msgDateRequired)
		return
	}

	blocked, err := h.service.BlockDate(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.ErrorDetail(err, availability.ErrInvalidInput, models.ErrInvalidDate))

		case errors.Is(err, availability.ErrProviderNotFound):
			handlers.RespondNotFound(w, msgProviderNotFound)

		default:
			h.logger.Error("POST /availability/blocked - Failed to block date: user_id=%d, date=%s, error=%v",
				userID, req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /availability/blocked - Date blocked: user_id=%d, date=%s", userID, blocked.Date)
	handlers.RespondJSON(w, http.StatusCreated, Response{Message: msgBlocked, BlockedDate: blocked})
}
