package get_business_info

import (
	"errors"
	"net/http"

	"github.com/m04kA/booking-platform/internal/api/handlers"
	"github.com/m04kA/booking-platform/internal/api/middleware"
	"github.com/m04kA/booking-platform/internal/service/businessinfo"
	"github.com/m04kA/booking-platform/internal/service/businessinfo/models"
)

const (
	msgMissingUserID    = "No token provided"
	msgProviderNotFound = "Provider profile not found"
)

// Response тело ответа; business_info null, пока провайдер её не заполнил
type Response struct {
	BusinessInfo *models.BusinessInfoResponse `json:"business_info"`
}

type Handler struct {
	service BusinessInfoService
	logger  Logger
}

func NewHandler(service BusinessInfoService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/business-info/me
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	info, err := h.service.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, businessinfo.ErrProviderNotFound) {
			handlers.RespondNotFound(w, msgProviderNotFound)
			return
		}
		h.logger.Error("GET /business-info/me - Failed to get business info: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Response{BusinessInfo: info})
}
