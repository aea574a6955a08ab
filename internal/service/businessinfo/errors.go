package businessinfo

import "errors"

var (
	// ErrProviderNotFound возвращается, когда у пользователя нет профиля провайдера
	ErrProviderNotFound = errors.New("businessinfo: provider profile not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("businessinfo: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("businessinfo: internal error")
)
