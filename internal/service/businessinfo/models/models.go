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

// UpsertBusinessInfoRequest запрос на сохранение информации о бизнесе
// Непереданные поля сохраняют прежнее значение, пустая строка очищает поле
type UpsertBusinessInfoRequest struct {
	BusinessHours   *string `json:"business_hours,omitempty"`
	LocationDetails *string `json:"location_details,omitempty"`
	Policies        *string `json:"policies,omitempty"`
	OtherInfo       *string `json:"other_info,omitempty"`
}

// ToDomain валидирует и конвертирует запрос
func (r *UpsertBusinessInfoRequest) ToDomain(providerID int64) (*domain.BusinessInfo, error) {
	info := &domain.BusinessInfo{ProviderID: providerID}

	fields := []struct {
		name string
		src  *string
		dst  **string
	}{
		{"business_hours", r.BusinessHours, &info.BusinessHours},
		{"location_details", r.LocationDetails, &info.LocationDetails},
		{"policies", r.Policies, &info.Policies},
		{"other_info", r.OtherInfo, &info.OtherInfo},
	}
	for _, f := range fields {
		if f.src == nil {
			continue
		}
		v := strings.TrimSpace(*f.src)
		if len(v) > domain.MaxBusinessInfoLength {
			return nil, fmt.Errorf("%w: %s is too long", ErrValidation, f.name)
		}
		*f.dst = &v
	}

	if info.IsEmpty() {
		return nil, fmt.Errorf("%w: no fields to update", ErrValidation)
	}
	return info, nil
}

// BusinessInfoResponse информация о бизнесе
type BusinessInfoResponse struct {
	ProviderID      int64     `json:"provider_id"`
	BusinessHours   *string   `json:"business_hours"`
	LocationDetails *string   `json:"location_details"`
	Policies        *string   `json:"policies"`
	OtherInfo       *string   `json:"other_info"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// FromDomainBusinessInfo конвертирует информацию в DTO
func FromDomainBusinessInfo(b *domain.BusinessInfo) *BusinessInfoResponse {
	if b == nil {
		return nil
	}
	return &BusinessInfoResponse{
		ProviderID:      b.ProviderID,
		BusinessHours:   b.BusinessHours,
		LocationDetails: b.LocationDetails,
		Policies:        b.Policies,
		OtherInfo:       b.OtherInfo,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}
