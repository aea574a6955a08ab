package list_services

import (
	"net/http"

	"github.com/m04kA/booking-platform/internal/api/handlers"
	"github.com/m04kA/booking-platform/internal/api/middleware"
	"github.com/m04kA/booking-platform/internal/service/catalog/models"
)

const (
	msgMissingUserID     = "No token provided"
	msgInvalidProviderID = "Invalid provider id"
)

// Response тело ответа
type Response struct {
	Services []models.ServiceResponse `json:"services"`
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

// HandlePublic GET /api/v1/public/providers/{providerId}/services
// Публичный endpoint - без авторизации, гостям видны только активные услуги
func (h *Handler) HandlePublic(w http.ResponseWriter, r *http.Request) {
	providerID, err := handlers.PathInt64(r, "providerId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}
	h.respond(w, r, providerID, true)
}

// HandleOwn GET /api/v1/services
// Провайдер видит весь свой каталог, включая скрытые услуги
func (h *Handler) HandleOwn(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	h.respond(w, r, userID, false)
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, providerID int64, activeOnly bool) {
	list, err := h.service.ListByProvider(r.Context(), providerID, activeOnly)
	if err != nil {
		h.logger.Error("GET services - Failed to list services: provider_id=%d, error=%v", providerID, err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, Response{Services: list})
}
