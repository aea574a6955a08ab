package update_service

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
	msgInvalidServiceID   = "Invalid service id"
	msgServiceNotFound    = "Service not found"
	msgUpdated            = "Service updated successfully"
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

// Handle PUT /api/v1/services/{serviceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Извлекаем serviceId из URL
	serviceID, err := handlers.PathInt64(r, "serviceId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	// Декодируем body
	var req models.UpdateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /services/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	svc, err := h.service.Update(r.Context(), userID, serviceID, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.ErrorDetail(err, catalog.ErrInvalidInput, models.ErrValidation))

		case errors.Is(err, catalog.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("PUT /services/{id} - Failed to update service: id=%d, user_id=%d, error=%v",
				serviceID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /services/{id} - Service updated: id=%d", serviceID)
	handlers.RespondJSON(w, http.StatusOK, Response{Message: msgUpdated, Service: svc})
}
