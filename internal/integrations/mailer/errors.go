package mailer

import "errors"

var (
	// ErrInvalidMessage возвращается, если у письма нет получателя или тела
	ErrInvalidMessage = errors.New("mailer: invalid message")

	// ErrNotConfigured возвращается, если транспорт не настроен
	ErrNotConfigured = errors.New("mailer: transport not configured")

	// ErrSendFailed возвращается при ошибке доставки
	ErrSendFailed = errors.New("mailer: send failed")
)

func validate(msg *Message) error {
	if msg == nil || len(msg.To) == 0 {
		return ErrInvalidMessage
	}
	if msg.Text == "" && msg.HTML == "" {
		return ErrInvalidMessage
	}
	return nil
}
