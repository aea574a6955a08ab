package create_service

import (
	"errors"
	"net/http"

	"github.com/m04kA/booking-platform/internal/api/handlers"
	"github.com/m04kA/booking-platform/internal/api/middleware"
	"github.com/m04kA/booking-platform/internal/service/catalog"
	"github.com/m04kA/booking-platform/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgMissingUserID      = "No token provided"
	msgProviderNotFound   = "Provider profile not found. Please create a provider profile first."
	msgCreated            = "Service created successfully"
)

// Response тело ответа
type Response struct {
	Message string                  `json:"message"`
	Service *models.ServiceResponse `json:"service"`
}

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Декодируем body
	var req models.CreateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем сервис
	svc, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.ErrorDetail(err, catalog.ErrInvalidInput, models.ErrValidation))

		case errors.Is(err, catalog.ErrProviderNotFound):
			handlers.RespondNotFound(w, msgProviderNotFound)

		default:
			h.logger.Error("POST /services - Failed to create service: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	h.logger.Info("POST /services - Service created: id=%d, provider=%d", svc.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, Response{Message: msgCreated, Service: svc})
}
