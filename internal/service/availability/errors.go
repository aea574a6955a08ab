package availability

import "errors"

var (
	// ErrProviderNotFound возвращается, когда у пользователя нет профиля провайдера
	ErrProviderNotFound = errors.New("availability: provider profile not found")

	// ErrBlockedDateNotFound возвращается, когда блокировки нет или она чужая
	ErrBlockedDateNotFound = errors.New("availability: blocked date not found or unauthorized")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("availability: internal error")
)
