package faqs

import "errors"

var (
	// ErrFAQNotFound возвращается, когда вопрос не найден или принадлежит другому провайдеру
	ErrFAQNotFound = errors.New("faqs: faq not found")

	// ErrProviderNotFound возвращается, когда у пользователя нет профиля провайдера
	ErrProviderNotFound = errors.New("faqs: provider profile not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("faqs: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("faqs: internal error")
)
