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

// CreateFAQRequest запрос на создание вопроса
type CreateFAQRequest struct {
	Question     string `json:"question"`
	Answer       string `json:"answer"`
	DisplayOrder int    `json:"display_order"`
	IsActive     *bool  `json:"is_active,omitempty"` // по умолчанию true
}

// ToDomain валидирует и конвертирует запрос
func (r *CreateFAQRequest) ToDomain(providerID int64) (*domain.FAQ, error) {
	question, err := validateText("question", r.Question)
	if err != nil {
		return nil, err
	}
	answer, err := validateText("answer", r.Answer)
	if err != nil {
		return nil, err
	}
	if err := validateOrder(&r.DisplayOrder); err != nil {
		return nil, err
	}

	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}

	return &domain.FAQ{
		ProviderID:   providerID,
		Question:     question,
		Answer:       answer,
		DisplayOrder: r.DisplayOrder,
		IsActive:     isActive,
	}, nil
}

// UpdateFAQRequest частичное обновление вопроса
type UpdateFAQRequest struct {
	Question     *string `json:"question,omitempty"`
	Answer       *string `json:"answer,omitempty"`
	DisplayOrder *int    `json:"display_order,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

// ToDomain валидирует и конвертирует запрос
func (r *UpdateFAQRequest) ToDomain() (domain.FAQUpdate, error) {
	upd := domain.FAQUpdate{
		DisplayOrder: r.DisplayOrder,
		IsActive:     r.IsActive,
	}

	if r.Question != nil {
		q, err := validateText("question", *r.Question)
		if err != nil {
			return domain.FAQUpdate{}, err
		}
		upd.Question = &q
	}
	if r.Answer != nil {
		a, err := validateText("answer", *r.Answer)
		if err != nil {
			return domain.FAQUpdate{}, err
		}
		upd.Answer = &a
	}
	if err := validateOrder(r.DisplayOrder); err != nil {
		return domain.FAQUpdate{}, err
	}
	if upd.Question == nil && upd.Answer == nil && upd.DisplayOrder == nil && upd.IsActive == nil {
		return domain.FAQUpdate{}, fmt.Errorf("%w: no fields to update", ErrValidation)
	}

	return upd, nil
}

func validateText(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%w: %s is required", ErrValidation, field)
	}
	if len(value) > domain.MaxFAQLength {
		return "", fmt.Errorf("%w: %s is too long", ErrValidation, field)
	}
	return value, nil
}

func validateOrder(order *int) error {
	if order != nil && *order < 0 {
		return fmt.Errorf("%w: display_order must not be negative", ErrValidation)
	}
	return nil
}

// FAQResponse вопрос и ответ
type FAQResponse struct {
	ID           int64     `json:"id"`
	ProviderID   int64     `json:"provider_id"`
	Question     string    `json:"question"`
	Answer       string    `json:"answer"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// FromDomainFAQ конвертирует вопрос в DTO
func FromDomainFAQ(f *domain.FAQ) *FAQResponse {
	if f == nil {
		return nil
	}
	return &FAQResponse{
		ID:           f.ID,
		ProviderID:   f.ProviderID,
		Question:     f.Question,
		Answer:       f.Answer,
		DisplayOrder: f.DisplayOrder,
		IsActive:     f.IsActive,
		CreatedAt:    f.CreatedAt,
		UpdatedAt:    f.UpdatedAt,
	}
}

// FromDomainFAQs конвертирует список в DTO
func FromDomainFAQs(list []*domain.FAQ) []FAQResponse {
	resp := make([]FAQResponse, 0, len(list))
	for _, f := range list {
		resp = append(resp, *FromDomainFAQ(f))
	}
	return resp
}
