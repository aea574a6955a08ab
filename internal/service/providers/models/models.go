package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/m04kA/booking-platform/internal/domain"
)

// ErrValidation возвращается при невалидном запросе
var ErrValidation = errors.New("validation failed")

// CreateProviderRequest запрос на создание профиля
type CreateProviderRequest struct {
	BusinessName string  `json:"business_name"`
	Description  *string `json:"description,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Address      *string `json:"address,omitempty"`
}

// Validate проверяет запрос
func (r *CreateProviderRequest) Validate() error {
	name := strings.TrimSpace(r.BusinessName)
	if name == "" {
		return fmt.Errorf("%w: business_name is required", ErrValidation)
	}
	if len(name) > domain.MaxBusinessNameLength {
		return fmt.Errorf("%w: business_name is too long", ErrValidation)
	}
	if hasControl(name) {
		return fmt.Errorf("%w: business_name must not contain control characters", ErrValidation)
	}
	return nil
}

// ToDomain конвертирует запрос в domain модель
func (r *CreateProviderRequest) ToDomain(userID int64) *domain.Provider {
	return &domain.Provider{
		UserID:       userID,
		BusinessName: strings.TrimSpace(r.BusinessName),
		Description:  r.Description,
		Phone:        r.Phone,
		Address:      r.Address,
	}
}

// UpdateProviderRequest частичное обновление профиля
type UpdateProviderRequest struct {
	BusinessName *string `json:"business_name,omitempty"`
	Description  *string `json:"description,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Address      *string `json:"address,omitempty"`
}

// ToDomain валидирует и конвертирует запрос
func (r *UpdateProviderRequest) ToDomain() (domain.ProviderUpdate, error) {
	if r.BusinessName != nil {
		name := strings.TrimSpace(*r.BusinessName)
		if name == "" || len(name) > domain.MaxBusinessNameLength {
			return domain.ProviderUpdate{}, fmt.Errorf("%w: business_name must be 1..%d characters", ErrValidation, domain.MaxBusinessNameLength)
		}
		if hasControl(name) {
			return domain.ProviderUpdate{}, fmt.Errorf("%w: business_name must not contain control characters", ErrValidation)
		}
		r.BusinessName = &name
	}
	return domain.ProviderUpdate{
		BusinessName: r.BusinessName,
		Description:  r.Description,
		Phone:        r.Phone,
		Address:      r.Address,
	}, nil
}

// UpdateEmailConfigRequest настройка собственного почтового ящика провайдера
type UpdateEmailConfigRequest struct {
	ServiceType string  `json:"email_service_type"`
	Host        *string `json:"email_smtp_host,omitempty"`
	Port        *int    `json:"email_smtp_port,omitempty"`
	Secure      bool    `json:"email_smtp_secure"`
	User        *string `json:"email_smtp_user,omitempty"`
	FromEmail   *string `json:"email_from_address,omitempty"`
	Password    *string `json:"email_smtp_password,omitempty"` // nil = оставить сохранённый
}

// Validate проверяет запрос
func (r *UpdateEmailConfigRequest) Validate() error {
	t := domain.EmailServiceType(r.ServiceType)
	if !t.IsValid() {
		return fmt.Errorf("%w: email_service_type must be one of smtp, gmail, sendgrid", ErrValidation)
	}
	if t == domain.EmailServiceSMTP && (r.Host == nil || *r.Host == "") {
		return fmt.Errorf("%w: email_smtp_host is required for smtp", ErrValidation)
	}
	if r.Port != nil && (*r.Port <= 0 || *r.Port > 65535) {
		return fmt.Errorf("%w: email_smtp_port is out of range", ErrValidation)
	}
	return nil
}

// ProviderResponse профиль провайдера
type ProviderResponse struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	BusinessName string    `json:"business_name"`
	Description  *string   `json:"description,omitempty"`
	Phone        *string   `json:"phone,omitempty"`
	Address      *string   `json:"address,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// EmailConfigResponse настройки почты без пароля
type EmailConfigResponse struct {
	ServiceType *string `json:"email_service_type"`
	Host        *string `json:"email_smtp_host"`
	Port        *int    `json:"email_smtp_port"`
	Secure      bool    `json:"email_smtp_secure"`
	User        *string `json:"email_smtp_user"`
	FromEmail   *string `json:"email_from_address"`
	HasPassword bool    `json:"has_password"`
}

// FromDomainProvider конвертирует профиль в DTO
func FromDomainProvider(p *domain.Provider) *ProviderResponse {
	if p == nil {
		return nil
	}
	return &ProviderResponse{
		ID:           p.ID,
		UserID:       p.UserID,
		BusinessName: p.BusinessName,
		Description:  p.Description,
		Phone:        p.Phone,
		Address:      p.Address,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// FromDomainEmailConfig конвертирует настройки почты в DTO
func FromDomainEmailConfig(c domain.EmailConfig) *EmailConfigResponse {
	var serviceType *string
	if c.ServiceType != nil {
		t := string(*c.ServiceType)
		serviceType = &t
	}
	return &EmailConfigResponse{
		ServiceType: serviceType,
		Host:        c.Host,
		Port:        c.Port,
		Secure:      c.Secure,
		User:        c.User,
		FromEmail:   c.FromEmail,
		HasPassword: c.PasswordEncrypted != nil && *c.PasswordEncrypted != "",
	}
}

// hasControl имя бизнеса попадает в заголовок From, переводы строк в нём недопустимы
func hasControl(s string) bool {
	return strings.IndexFunc(s, unicode.IsControl) >= 0
}
