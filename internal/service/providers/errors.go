package providers

import "errors"

var (
	// ErrProviderNotFound возвращается, когда у пользователя нет профиля провайдера
	ErrProviderNotFound = errors.New("providers: provider profile not found")

	// ErrProviderExists возвращается при повторном создании профиля
	ErrProviderExists = errors.New("providers: provider profile already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("providers: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("providers: internal error")
)
