package catalog

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена или принадлежит другому провайдеру
	ErrServiceNotFound = errors.New("catalog: service not found")

	// ErrProviderNotFound возвращается, когда у пользователя нет профиля провайдера
	ErrProviderNotFound = errors.New("catalog: provider profile not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("catalog: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog: internal error")
)
