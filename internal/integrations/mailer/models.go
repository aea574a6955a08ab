package mailer

// Каналы доставки, записываются в email_notifications.channel
const (
	ChannelSMTP   = "smtp"
	ChannelResend = "resend"
	ChannelLog    = "log"
)

// Message письмо для отправки
type Message struct {
	From    string
	To      []string
	Subject string
	Text    string
	HTML    string
}

// SMTPConfig параметры SMTP сервера
// Secure означает TLS с момента подключения (обычно порт 465), иначе STARTTLS если сервер его поддерживает
type SMTPConfig struct {
	Host     string
	Port     int
	Secure   bool
	User     string
	Password string
	From     string
}
