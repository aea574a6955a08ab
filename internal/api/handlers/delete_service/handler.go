package delete_service

import (
	"errors"
	"net/http"

	"github.com/m04kA/booking-platform/internal/api/handlers"
	"github.com/m04kA/booking-platform/internal/api/middleware"
	"github.com/m04kA/booking-platform/internal/service/catalog"
)

const (
	msgMissingUserID    = "No token provided"
	msgInvalidServiceID = "Invalid service id"
	msgServiceNotFound  = "Service not found"
	msgDeleted          = "Service deleted successfully"
)

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

// Handle DELETE /api/v1/services/{serviceId}
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

	if err := h.service.Delete(r.Context(), userID, serviceID); err != nil {
		if errors.Is(err, catalog.ErrServiceNotFound) {
			handlers.RespondNotFound(w, msgServiceNotFound)
			return
		}
		h.logger.Error("DELETE /services/{id} - Failed to delete service: id=%d, user_id=%d, error=%v",
			serviceID, userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /services/{id} - Service deleted: id=%d", serviceID)
	handlers.RespondMessage(w, http.StatusOK, msgDeleted)
}
