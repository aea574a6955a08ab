package notifications

import "errors"

var (
	// ErrRecipientNotFound возвращается, если не удалось определить адрес получателя
	ErrRecipientNotFound = errors.New("notifications: recipient not found")

	// ErrDelivery возвращается, если письмо не удалось доставить (запись в журнале есть)
	ErrDelivery = errors.New("notifications: delivery failed")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("notifications: internal error")
)
