package upsert_business_info

import (
	"errors"
	"net/http"

	"github.com/m04kA/booking-platform/internal/api/handlers"
	"github.com/m04kA/booking-platform/internal/api/middleware"
	"github.com/m04kA/booking-platform/internal/service/businessinfo"
	"github.com/m04kA/booking-platform/internal/service/businessinfo/models"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgMissingUserID      = "No token provided"
	msgProviderNotFound   = "Provider profile not found. Please create a provider profile first."
	msgSaved              = "Business information saved successfully"
)

// Response тело ответа
type Response struct {
	Message      string                       `json:"message"`
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

// Handle POST|PUT /api/v1/business-info
// Непереданные поля не меняются
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Декодируем body
	var req models.UpsertBusinessInfoRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s /business-info - Invalid request body: %v", r.Method, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем сервис
	info, err := h.service.Upsert(r.Context(), userID, &req)
	if err != nil {
		// Обработка ошибок сервиса
		switch {
		case errors.Is(err, businessinfo.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.ErrorDetail(err, businessinfo.ErrInvalidInput, models.ErrValidation))

		case errors.Is(err, businessinfo.ErrProviderNotFound):
			handlers.RespondNotFound(w, msgProviderNotFound)

		default:
			h.logger.Error("%s /business-info - Failed to save business info: user_id=%d, error=%v", r.Method, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s /business-info - Business info saved: provider=%d", r.Method, userID)
	handlers.RespondJSON(w, http.StatusOK, Response{Message: msgSaved, BusinessInfo: info})
}
