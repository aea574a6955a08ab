package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Auth      AuthConfig      `toml:"auth"`
	Email     EmailConfig     `toml:"email"`
	AI        AIConfig        `toml:"ai"`
	Reminders RemindersConfig `toml:"reminders"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
}

// ServerConfig параметры HTTP сервера
type ServerConfig struct {
	HTTPPort        int    `toml:"http_port"`
	ReadTimeout     int    `toml:"read_timeout"`
	WriteTimeout    int    `toml:"write_timeout"`
	IdleTimeout     int    `toml:"idle_timeout"`
	ShutdownTimeout int    `toml:"shutdown_timeout"`
	Timezone        string `toml:"timezone"`
}

// Location часовой пояс платформы
func (s ServerConfig) Location() (*time.Location, error) {
	return time.LoadLocation(s.Timezone)
}

// DatabaseConfig параметры подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig параметры логгера
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig параметры Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AuthConfig параметры JWT и шифрования учётных данных
type AuthConfig struct {
	JWTSecret     string `toml:"jwt_secret"`
	EncryptionKey string `toml:"encryption_key"`
}

// EmailConfig платформенный отправитель писем (Resend)
type EmailConfig struct {
	ResendAPIKey string `toml:"resend_api_key"`
	From         string `toml:"from"`
}

// AIConfig параметры ассистента
type AIConfig struct {
	Backend      string `toml:"backend"` // openai | gemini | пусто
	Model        string `toml:"model"`
	BaseURL      string `toml:"base_url"`
	Timeout      int    `toml:"timeout"`
	OpenAIAPIKey string `toml:"openai_api_key"`
	GeminiAPIKey string `toml:"gemini_api_key"`
}

// APIKey ключ выбранного бэкенда
func (a AIConfig) APIKey() string {
	switch a.Backend {
	case "openai":
		return a.OpenAIAPIKey
	case "gemini":
		return a.GeminiAPIKey
	default:
		return ""
	}
}

// RemindersConfig параметры задачи напоминаний
type RemindersConfig struct {
	Enabled   bool   `toml:"enabled"`
	Schedule  string `toml:"schedule"`
	LeadHours int    `toml:"lead_hours"`
}

// RateLimitConfig ограничение частоты публичных запросов по IP
type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerMinute float64 `toml:"requests_per_minute"`
	Burst             int     `toml:"burst"`
	// TrustProxy разрешает брать адрес клиента из X-Forwarded-For
	TrustProxy bool `toml:"trust_proxy"`
}

// Load читает .env (если есть), toml файл и переменные окружения
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	cfg := defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    30,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
			Timezone:        "UTC",
		},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs:      LogsConfig{Level: "info"},
		Metrics:   MetricsConfig{Path: "/metrics", ServiceName: "booking_platform"},
		AI:        AIConfig{Timeout: 30},
		Reminders: RemindersConfig{Schedule: "@hourly", LeadHours: 24},
		RateLimit: RateLimitConfig{RequestsPerMinute: 60, Burst: 10},
	}
}

// applyEnv переопределяет секреты и часто меняемые значения из окружения
func (c *Config) applyEnv() error {
	setString(&c.Database.Host, "DATABASE_HOST")
	setString(&c.Database.Password, "DATABASE_PASSWORD")
	setString(&c.Auth.JWTSecret, "JWT_SECRET")
	setString(&c.Auth.EncryptionKey, "ENCRYPTION_KEY")
	setString(&c.Email.ResendAPIKey, "RESEND_API_KEY")
	setString(&c.Email.From, "EMAIL_FROM")
	setString(&c.AI.OpenAIAPIKey, "OPENAI_API_KEY")
	setString(&c.AI.GeminiAPIKey, "GEMINI_API_KEY")
	setString(&c.Server.Timezone, "TZ_PLATFORM")

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid PORT %q: %w", v, err)
		}
		c.Server.HTTPPort = port
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	var errs []error

	if c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("auth.jwt_secret (JWT_SECRET) is required"))
	}
	if c.Database.Host == "" {
		errs = append(errs, errors.New("database.host is required"))
	}
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		errs = append(errs, fmt.Errorf("server.http_port %d is out of range", c.Server.HTTPPort))
	}
	if _, err := c.Server.Location(); err != nil {
		errs = append(errs, fmt.Errorf("server.timezone: %v", err))
	}

	c.AI.Backend = strings.ToLower(strings.TrimSpace(c.AI.Backend))
	switch c.AI.Backend {
	case "", "openai", "gemini":
	default:
		errs = append(errs, fmt.Errorf("ai.backend %q is not supported", c.AI.Backend))
	}

	if c.Reminders.Enabled && c.Reminders.LeadHours <= 0 {
		errs = append(errs, errors.New("reminders.lead_hours must be positive"))
	}
	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerMinute <= 0 || c.RateLimit.Burst <= 0) {
		errs = append(errs, errors.New("rate_limit requires positive requests_per_minute and burst"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
