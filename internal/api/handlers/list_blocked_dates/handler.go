package list_blocked_dates

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/booking-platform/internal/api/handlers"
	"github.com/m04kA/booking-platform/internal/api/middleware"
	"github.com/m04kA/booking-platform/internal/domain"
	"github.com/m04kA/booking-platform/internal/service/availability"
	"github.com/m04kA/booking-platform/internal/service/availability/models"
)

const (
	msgMissingUserID    = "No token provided"
	msgRangeRequired    = "start_date and end_date query parameters are required"
	msgInvalidDate      = "Invalid date, expected YYYY-MM-DD"
	msgProviderNotFound = "Provider profile not found"
)

// Response тело ответа
type Response struct {
	BlockedDates []models.BlockedDateResponse `json:"blocked_dates"`
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

// Handle GET /api/v1/availability/blocked?start_date=&end_date=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Query params: start_date, end_date (обязательно, включительно)
	query := r.URL.Query()
	startStr, endStr := query.Get("start_date"), query.Get("end_date")
	if startStr == "" || endStr == "" {
		handlers.RespondBadRequest(w, msgRangeRequired)
		return
	}

	start, err := time.Parse(domain.DateFormat, startStr)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	end, err := time.Parse(domain.DateFormat, endStr)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	list, err := h.service.ListBlockedDates(r.Context(), userID, start, end)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.ErrorDetail(err, availability.ErrInvalidInput))

		case errors.Is(err, availability.ErrProviderNotFound):
			handlers.RespondNotFound(w, msgProviderNotFound)

		default:
			h.logger.Error("GET /availability/blocked - Failed to list: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Response{BlockedDates: list})
}
