package mailer

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// ResendSender платформенный отправитель через Resend API
type ResendSender struct {
	client *resend.Client
	from   string
}

// NewResendSender создает отправителя Resend
// from в формате "Name <addr>" или просто адрес
func NewResendSender(apiKey, from string) *ResendSender {
	return &ResendSender{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

// Channel имя канала доставки
func (s *ResendSender) Channel() string {
	return ChannelResend
}

// Send отправляет письмо
func (s *ResendSender) Send(ctx context.Context, msg *Message) error {
	if err := validate(msg); err != nil {
		return err
	}

	from := msg.From
	if from == "" {
		from = s.from
	}

	params := &resend.SendEmailRequest{
		From:    from,
		To:      msg.To,
		Subject: msg.Subject,
		Text:    msg.Text,
		Html:    msg.HTML,
	}

	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("%w: resend: %v", ErrSendFailed, err)
	}
	return nil
}
