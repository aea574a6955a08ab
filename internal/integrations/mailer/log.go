package mailer

import (
	"context"
	"strings"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// LogSender пишет письмо в лог вместо отправки
type LogSender struct {
	logger Logger
}

// NewLogSender создает отправителя, который только логирует письма
func NewLogSender(logger Logger) *LogSender {
	return &LogSender{logger: logger}
}

// Channel имя канала доставки
func (s *LogSender) Channel() string {
	return ChannelLog
}

// Send логирует письмо
func (s *LogSender) Send(_ context.Context, msg *Message) error {
	if err := validate(msg); err != nil {
		return err
	}
	s.logger.Info("mailer: email not delivered (log only) to=%s subject=%q body=%q",
		strings.Join(msg.To, ","), msg.Subject, msg.Text)
	return nil
}
