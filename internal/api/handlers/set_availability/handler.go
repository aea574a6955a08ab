package set_availability

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
	msgArrayRequired      = "availability array is required"
	msgProviderNotFound   = "Provider profile not found"
	msgUpdated            = "Availability schedule updated successfully"
)

// request тело запроса; nil массив отличается от пустого
type request struct {
	Availability *[]models.WeeklySlotInput `json:"availability"`
}

// Response тело ответа
// Response тело ответа
type Response struct {
	Message      string                      `json:"message"`
	Availability []models.WeeklySlotResponse `json:"availability"`
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

// Handle PUT /api/v1/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Декодируем body
	var req request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.Availability == nil {
		handlers.RespondBadRequest(w, msgArrayRequired)
		return
	}

	// Расписание заменяется целиком в одной транзакции
	slots, err := h.service.SetWeeklyAvailability(r.Context(), userID, &models.SetWeeklyRequest{Slots: *req.Availability})
	if err != nil {
		// Обработка ошибок сервиса
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.ErrorDetail(err, availability.ErrInvalidInput, models.ErrInvalidSlot))

		case errors.Is(err, availability.ErrProviderNotFound):
			handlers.RespondNotFound(w, msgProviderNotFound)

		default:
			h.logger.Error("PUT /availability - Failed to set schedule: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /availability - Schedule replaced: user_id=%d, slots=%d", userID, len(slots))
	handlers.RespondJSON(w, http.StatusOK, Response{Message: msgUpdated, Availability: slots})
}
