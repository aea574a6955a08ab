package ai_chat

import "errors"

var (
	// ErrAssistantUnavailable возвращается, если LLM бэкенд не настроен или недоступен
	ErrAssistantUnavailable = errors.New("ai_chat: assistant is not available")

	// ErrProviderNotFound возвращается, если у провайдера нет профиля
	ErrProviderNotFound = errors.New("ai_chat: provider not found")

	// ErrInvalidInput возвращается при невалидном сообщении
	ErrInvalidInput = errors.New("ai_chat: invalid input")

	// ErrInternal возвращается при внутренней ошибке
	ErrInternal = errors.New("ai_chat: internal error")
)
