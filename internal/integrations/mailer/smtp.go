package mailer

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode"

	gomail "github.com/wneessen/go-mail"
)

const smtpDialTimeout = 10 * time.Second

// SMTPSender отправляет письма через SMTP сервер провайдера
type SMTPSender struct {
	cfg SMTPConfig
}

// NewSMTPSender создает отправителя для SMTP сервера
func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

// Channel имя канала доставки
func (s *SMTPSender) Channel() string {
	return ChannelSMTP
}

// Send отправляет письмо
func (s *SMTPSender) Send(ctx context.Context, msg *Message) error {
	if err := validate(msg); err != nil {
		return err
	}

	from := msg.From
	if from == "" {
		from = s.cfg.From
	}
	m, err := buildMsg(from, msg)
	if err != nil {
		return err
	}

	client, err := gomail.NewClient(s.cfg.Host, s.clientOptions()...)
	if err != nil {
		return fmt.Errorf("%w: client %s: %v", ErrSendFailed, s.cfg.Host, err)
	}
	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("%w: %s:%d: %v", ErrSendFailed, s.cfg.Host, s.cfg.Port, err)
	}
	return nil
}

func (s *SMTPSender) clientOptions() []gomail.Option {
	opts := []gomail.Option{
		gomail.WithPort(s.cfg.Port),
		gomail.WithTimeout(smtpDialTimeout),
	}
	if s.cfg.Secure {
		opts = append(opts, gomail.WithSSL())
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSOpportunistic))
	}
	if s.cfg.User != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(s.cfg.User),
			gomail.WithPassword(s.cfg.Password),
		)
	}
	return opts
}

// FormatAddress собирает заголовок "Имя <адрес>"
// Управляющие символы из имени вырезаются, не-ASCII кодируется по RFC 2047
func FormatAddress(name, address string) string {
	name = strings.TrimSpace(strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, name))
	if name == "" {
		return address
	}
	return (&mail.Address{Name: name, Address: address}).String()
}

func buildMsg(from string, msg *Message) (*gomail.Msg, error) {
	m := gomail.NewMsg()
	if err := m.From(from); err != nil {
		return nil, fmt.Errorf("%w: from %q: %v", ErrInvalidMessage, from, err)
	}
	if err := m.To(msg.To...); err != nil {
		return nil, fmt.Errorf("%w: to: %v", ErrInvalidMessage, err)
	}
	m.Subject(msg.Subject)
	m.SetDate()

	switch {
	case msg.HTML == "":
		m.SetBodyString(gomail.TypeTextPlain, msg.Text)
	case msg.Text == "":
		m.SetBodyString(gomail.TypeTextHTML, msg.HTML)
	default:
		m.SetBodyString(gomail.TypeTextPlain, msg.Text)
		m.AddAlternativeString(gomail.TypeTextHTML, msg.HTML)
	}
	return m, nil
}
