package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/booking-platform/internal/domain"
)

// ErrValidation возвращается при невалидном запросе
var ErrValidation = errors.New("validation failed")

// CreateServiceRequest запрос на создание услуги
type CreateServiceRequest struct {
	Title           string  `json:"title"`
	Description     *string `json:"description,omitempty"`
	Category        *string `json:"category,omitempty"`
	Price           float64 `json:"price"`
	DurationMinutes *int    `json:"duration_minutes,omitempty"`
	ImageURL        *string `json:"image_url,omitempty"`
	IsActive        *bool   `json:"is_active,omitempty"` // по умолчанию true
}

// ToDomain валидирует и конвертирует запрос
func (r *CreateServiceRequest) ToDomain(providerID int64) (*domain.Service, error) {
	title := strings.TrimSpace(r.Title)
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if err := validatePrice(r.Price); err != nil {
		return nil, err
	}
	if err := validateDuration(r.DurationMinutes); err != nil {
		return nil, err
	}

	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}

	return &domain.Service{
		ProviderID:      providerID,
		Title:           title,
		Description:     r.Description,
		Category:        r.Category,
		Price:           r.Price,
		DurationMinutes: r.DurationMinutes,
		ImageURL:        r.ImageURL,
		IsActive:        isActive,
	}, nil
}

// UpdateServiceRequest частичное обновление услуги
type UpdateServiceRequest struct {
	Title           *string  `json:"title,omitempty"`
	Description     *string  `json:"description,omitempty"`
	Category        *string  `json:"category,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	DurationMinutes *int     `json:"duration_minutes,omitempty"`
	ImageURL        *string  `json:"image_url,omitempty"`
	IsActive        *bool    `json:"is_active,omitempty"`
}

// ToDomain валидирует и конвертирует запрос
func (r *UpdateServiceRequest) ToDomain() (domain.ServiceUpdate, error) {
	upd := domain.ServiceUpdate{
		Description:     r.Description,
		Category:        r.Category,
		Price:           r.Price,
		DurationMinutes: r.DurationMinutes,
		ImageURL:        r.ImageURL,
		IsActive:        r.IsActive,
	}

	if r.Title != nil {
		title := strings.TrimSpace(*r.Title)
		if err := validateTitle(title); err != nil {
			return domain.ServiceUpdate{}, err
		}
		upd.Title = &title
	}
	if r.Price != nil {
		if err := validatePrice(*r.Price); err != nil {
			return domain.ServiceUpdate{}, err
		}
	}
	if err := validateDuration(r.DurationMinutes); err != nil {
		return domain.ServiceUpdate{}, err
	}

	return upd, nil
}

func validateTitle(title string) error {
	if title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if len(title) > domain.MaxServiceTitleLength {
		return fmt.Errorf("%w: title is too long", ErrValidation)
	}
	return nil
}

func validatePrice(price float64) error {
	if price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	return nil
}

func validateDuration(d *int) error {
	if d != nil && *d <= 0 {
		return fmt.Errorf("%w: duration_minutes must be positive", ErrValidation)
	}
	return nil
}

// ServiceResponse услуга
type ServiceResponse struct {
	ID              int64     `json:"id"`
	ProviderID      int64     `json:"provider_id"`
	Title           string    `json:"title"`
	Description     *string   `json:"description,omitempty"`
	Category        *string   `json:"category,omitempty"`
	Price           float64   `json:"price"`
	DurationMinutes *int      `json:"duration_minutes,omitempty"`
	ImageURL        *string   `json:"image_url,omitempty"`
	IsActive        bool      `json:"is_active"`
	DisplayOrder    int       `json:"display_order"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// FromDomainService конвертирует услугу в DTO
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}
	return &ServiceResponse{
		ID:              s.ID,
		ProviderID:      s.ProviderID,
		Title:           s.Title,
		Description:     s.Description,
		Category:        s.Category,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		ImageURL:        s.ImageURL,
		IsActive:        s.IsActive,
		DisplayOrder:    s.DisplayOrder,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// FromDomainServices конвертирует список услуг в DTO
func FromDomainServices(list []*domain.Service) []ServiceResponse {
	resp := make([]ServiceResponse, 0, len(list))
	for _, s := range list {
		resp = append(resp, *FromDomainService(s))
	}
	return resp
}
