package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/booking-platform/internal/domain"
	"github.com/m04kA/booking-platform/pkg/types"
)

var (
	// ErrInvalidSlot возвращается при некорректном слоте расписания
	ErrInvalidSlot = errors.New("invalid availability slot")

	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
)

// Request модели

// WeeklySlotInput слот недельного расписания из запроса
type WeeklySlotInput struct {
	DayOfWeek   *int   `json:"day_of_week"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	IsAvailable *bool  `json:"is_available,omitempty"` // по умолчанию true
}

// SetWeeklyRequest запрос на полную замену расписания
type SetWeeklyRequest struct {
	Slots []WeeklySlotInput `json:"availability"`
}

// ToDomain валидирует слоты и конвертирует их в domain модели
func (r *SetWeeklyRequest) ToDomain(providerID int64) ([]*domain.WeeklySlot, error) {
	slots := make([]*domain.WeeklySlot, 0, len(r.Slots))

	for i, in := range r.Slots {
		if in.DayOfWeek == nil || in.StartTime == "" || in.EndTime == "" {
			return nil, fmt.Errorf("%w: slot %d must have day_of_week, start_time and end_time", ErrInvalidSlot, i)
		}
		if *in.DayOfWeek < 0 || *in.DayOfWeek > 6 {
			return nil, fmt.Errorf("%w: slot %d: day_of_week must be between 0 (Sunday) and 6 (Saturday)", ErrInvalidSlot, i)
		}

		start, err := types.NewTimeStringFromString(in.StartTime)
		if err != nil {
			return nil, fmt.Errorf("%w: slot %d: start_time: %v", ErrInvalidSlot, i, err)
		}
		end, err := types.NewTimeStringFromString(in.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%w: slot %d: end_time: %v", ErrInvalidSlot, i, err)
		}
		if !start.IsBefore(end) {
			return nil, fmt.Errorf("%w: slot %d: start_time must be before end_time", ErrInvalidSlot, i)
		}

		isAvailable := true
		if in.IsAvailable != nil {
			isAvailable = *in.IsAvailable
		}

		slots = append(slots, &domain.WeeklySlot{
			ProviderID:  providerID,
			DayOfWeek:   *in.DayOfWeek,
			StartTime:   start,
			EndTime:     end,
			IsAvailable: isAvailable,
		})
	}

	return slots, nil
}

// BlockDateRequest запрос на блокировку даты
type BlockDateRequest struct {
	Date   string  `json:"blocked_date"` // "2025-10-15"
	Reason *string `json:"reason,omitempty"`
}

// ToDomain конвертирует запрос в domain модель
func (r *BlockDateRequest) ToDomain(providerID int64) (*domain.BlockedDate, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, r.Date)
	}
	return &domain.BlockedDate{
		ProviderID: providerID,
		Date:       date,
		Reason:     r.Reason,
	}, nil
}

// Response модели

// WeeklySlotResponse слот расписания
type WeeklySlotResponse struct {
	ID          int64     `json:"id"`
	ProviderID  int64     `json:"provider_id"`
	DayOfWeek   int       `json:"day_of_week"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
}

// BlockedDateResponse заблокированная дата
type BlockedDateResponse struct {
	ID         int64     `json:"id"`
	ProviderID int64     `json:"provider_id"`
	Date       string    `json:"blocked_date"`
	Reason     *string   `json:"reason,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// AvailabilityResponse вердикт по конкретному моменту
type AvailabilityResponse struct {
	ProviderID int64  `json:"provider_id"`
	At         string `json:"at"`
	Available  bool   `json:"available"`
	Reason     string `json:"reason,omitempty"`
}

// AvailableSlotsResponse свободные времена на дату
type AvailableSlotsResponse struct {
	ProviderID     int64    `json:"provider_id"`
	Date           string   `json:"date"`
	AvailableSlots []string `json:"available_slots"`
}

// Методы конвертации

// FromDomainWeeklySlots конвертирует слоты расписания в DTO
func FromDomainWeeklySlots(slots []*domain.WeeklySlot) []WeeklySlotResponse {
	resp := make([]WeeklySlotResponse, 0, len(slots))
	for _, s := range slots {
		resp = append(resp, WeeklySlotResponse{
			ID:          s.ID,
			ProviderID:  s.ProviderID,
			DayOfWeek:   s.DayOfWeek,
			StartTime:   s.StartTime.String(),
			EndTime:     s.EndTime.String(),
			IsAvailable: s.IsAvailable,
			CreatedAt:   s.CreatedAt,
		})
	}
	return resp
}

// FromDomainBlockedDate конвертирует блокировку в DTO
func FromDomainBlockedDate(b *domain.BlockedDate) *BlockedDateResponse {
	if b == nil {
		return nil
	}
	return &BlockedDateResponse{
		ID:         b.ID,
		ProviderID: b.ProviderID,
		Date:       b.Date.Format(domain.DateFormat),
		Reason:     b.Reason,
		CreatedAt:  b.CreatedAt,
	}
}

// FromDomainBlockedDates конвертирует список блокировок в DTO
func FromDomainBlockedDates(list []*domain.BlockedDate) []BlockedDateResponse {
	resp := make([]BlockedDateResponse, 0, len(list))
	for _, b := range list {
		resp = append(resp, *FromDomainBlockedDate(b))
	}
	return resp
}

// FromDomainAvailability конвертирует вердикт в DTO
func FromDomainAvailability(providerID int64, at time.Time, a domain.Availability) *AvailabilityResponse {
	return &AvailabilityResponse{
		ProviderID: providerID,
		At:         at.Format(time.RFC3339),
		Available:  a.Available,
		Reason:     a.Reason,
	}
}

// FromSlots конвертирует список времён в DTO
func FromSlots(providerID int64, date time.Time, slots []types.TimeString) *AvailableSlotsResponse {
	values := make([]string, len(slots))
	for i, s := range slots {
		values[i] = s.String()
	}
	return &AvailableSlotsResponse{
		ProviderID:     providerID,
		Date:           date.Format(domain.DateFormat),
		AvailableSlots: values,
	}
}
