package get_available_slots

import (
	"net/http"
	"time"

	"github.com/m04kA/booking-platform/internal/api/handlers"
	"github.com/m04kA/booking-platform/internal/domain"
)

const (
	msgInvalidProviderID = "Invalid provider id"
	msgDateRequired      = "date query parameter is required"
	msgInvalidDate       = "Invalid date, expected YYYY-MM-DD"
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

// Handle GET /api/v1/availability/{providerId}/slots?date=YYYY-MM-DD
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем providerId из URL
	providerID, err := handlers.PathInt64(r, "providerId")
	if err != nil {
		h.logger.Warn("GET /availability/{id}/slots - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	// Query params: date (обязательно)
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		handlers.RespondBadRequest(w, msgDateRequired)
		return
	}

	// Дата трактуется в часовом поясе платформы
	date, err := time.ParseInLocation(domain.DateFormat, dateStr, h.service.Location())
	if err != nil {
		h.logger.Warn("GET /availability/{id}/slots - Invalid date: %s", dateStr)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем сервис
	result, err := h.service.GetAvailableSlots(r.Context(), providerID, date)
	if err != nil {
		h.logger.Error("GET /availability/{id}/slots - Failed to get slots: provider_id=%d, date=%s, error=%v",
			providerID, dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	// Формируем HTTP ответ
	h.logger.Info("GET /availability/{id}/slots - Slots retrieved: provider_id=%d, date=%s, count=%d",
		providerID, dateStr, len(result.AvailableSlots))
	handlers.RespondJSON(w, http.StatusOK, result)
}
