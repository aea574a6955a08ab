package mailer

// Preset хост и порт для известных почтовых сервисов
type Preset struct {
	Host string
	Port int
	// User фиксированный логин сервиса, пусто если логин задаёт провайдер
	User string
}

var presets = map[string]Preset{
	"gmail":    {Host: "smtp.gmail.com", Port: 587},
	"sendgrid": {Host: "smtp.sendgrid.net", Port: 587, User: "apikey"},
}

// ResolveSMTP дополняет настройки провайдера значениями пресета
// Для "smtp" используются только явно заданные host и port (порт по умолчанию 587).
func ResolveSMTP(serviceType string, cfg SMTPConfig) (SMTPConfig, error) {
	if p, ok := presets[serviceType]; ok {
		if cfg.Host == "" {
			cfg.Host = p.Host
		}
		if cfg.Port == 0 {
			cfg.Port = p.Port
		}
		if p.User != "" {
			cfg.User = p.User
		}
	}

	if cfg.Port == 0 {
		if cfg.Secure {
			cfg.Port = 465
		} else {
			cfg.Port = 587
		}
	}
	if cfg.Host == "" {
		return SMTPConfig{}, ErrNotConfigured
	}
	if cfg.From == "" {
		cfg.From = cfg.User
	}
	return cfg, nil
}
