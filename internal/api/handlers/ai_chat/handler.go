package ai_chat

import (
	"errors"
	"net/http"

	"github.com/m04kA/booking-platform/internal/api/handlers"
	"github.com/m04kA/booking-platform/internal/usecase/ai_chat"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgInvalidProviderID  = "Invalid provider id"
	msgUnavailable        = "AI service is not available"
	msgProviderNotFound   = "Provider not found"
)

type Handler struct {
	useCase ChatUseCase
	logger  Logger
}

func NewHandler(useCase ChatUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/public/providers/{providerId}/chat
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем providerId из URL
	providerID, err := handlers.PathInt64(r, "providerId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	// Декодируем body
	var req ai_chat.Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /public/providers/{id}/chat - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.ProviderID = providerID

	// Вызываем use case
	resp, err := h.useCase.Execute(r.Context(), &req)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, ai_chat.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.ErrorDetail(err, ai_chat.ErrInvalidInput))

		case errors.Is(err, ai_chat.ErrProviderNotFound):
			handlers.RespondNotFound(w, msgProviderNotFound)

		case errors.Is(err, ai_chat.ErrAssistantUnavailable):
			handlers.RespondServiceUnavailable(w, msgUnavailable)

		default:
			h.logger.Error("POST /public/providers/{id}/chat - Failed: provider_id=%d, error=%v", providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
