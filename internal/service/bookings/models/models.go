package models

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/m04kA/booking-platform/internal/domain"
)

// Request модели

// UpdateStatusRequest запрос провайдера на смену статуса
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ListProviderBookingsRequest фильтр списка бронирований провайдера
type ListProviderBookingsRequest struct {
	ProviderID      int64
	Status          *string
	StartDate       *time.Time // включительно
	EndDate         *time.Time // включительно
	IncludeInactive bool
}

// ToDomainFilter конвертирует запрос в domain фильтр
// EndDate включительно: в фильтре граница становится началом следующего дня
func (r *ListProviderBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		ProviderID: &r.ProviderID,
		ActiveOnly: !r.IncludeInactive,
	}

	if r.Status != nil {
		status, ok := domain.ParseBookingStatus(*r.Status)
		if !ok {
			return filter, fmt.Errorf("unknown status %q", *r.Status)
		}
		filter.Status = &status
		if status == domain.StatusCancelled {
			filter.ActiveOnly = false
		}
	}

	if r.StartDate != nil && r.EndDate != nil && r.EndDate.Before(*r.StartDate) {
		return filter, fmt.Errorf("end_date is before start_date")
	}
	if r.StartDate != nil {
		filter.From = r.StartDate
	}
	if r.EndDate != nil {
		to := r.EndDate.AddDate(0, 0, 1)
		filter.To = &to
	}

	return filter, nil
}

// NormalizeEmail проверяет и нормализует email гостя для поиска
func NormalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", fmt.Errorf("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "", fmt.Errorf("invalid email format")
	}
	return strings.ToLower(email), nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            int64     `json:"id"`
	ProviderID    int64     `json:"provider_id"`
	ServiceID     int64     `json:"service_id"`
	ServiceTitle  string    `json:"service_title,omitempty"`
	CustomerID    *int64    `json:"customer_id,omitempty"`
	CustomerName  *string   `json:"customer_name,omitempty"`
	CustomerEmail *string   `json:"customer_email,omitempty"`
	CustomerPhone *string   `json:"customer_phone,omitempty"`
	BookingDate   time.Time `json:"booking_date"`
	Status        string    `json:"status"`
	Notes         *string   `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:            b.ID,
		ProviderID:    b.ProviderID,
		ServiceID:     b.ServiceID,
		ServiceTitle:  b.ServiceTitle,
		CustomerID:    b.CustomerID,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		BookingDate:   b.BookingDate,
		Status:        string(b.Status),
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, *FromDomainBooking(b))
	}
	return resp
}
