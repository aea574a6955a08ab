package llm

import "errors"

var (
	// ErrNotConfigured возвращается, если не задан API ключ
	ErrNotConfigured = errors.New("llm: api key is not configured")

	// ErrRateLimited возвращается, если бэкенд ограничил частоту запросов
	ErrRateLimited = errors.New("llm: rate limited")

	// ErrInvalidResponse возвращается при неожиданном ответе бэкенда
	ErrInvalidResponse = errors.New("llm: invalid response")

	// ErrInternal возвращается при ошибке выполнения запроса
	ErrInternal = errors.New("llm: internal error")
)
