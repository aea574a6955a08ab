package create_booking

import (
	"time"

	"github.com/m04kA/booking-platform/internal/domain"
)

// GuestContact контакты гостя, бронирующего без аккаунта
type GuestContact struct {
	Name  string
	Email string
	Phone *string
}

// Request модель запроса на создание бронирования
// Ровно одно из полей CustomerID и Guest должно быть задано
type Request struct {
	CustomerID  *int64        // ID зарегистрированного покупателя
	Guest       *GuestContact // Контакты гостя
	ServiceID   int64
	BookingDate time.Time
	Notes       *string
}

// Kind вид бронирования для метрик и логов
func (r *Request) Kind() string {
	if r.CustomerID != nil {
		return domain.BookingKindCustomer
	}
	return domain.BookingKindGuest
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64     `json:"id"`
	ProviderID      int64     `json:"provider_id"`
	ServiceID       int64     `json:"service_id"`
	ServiceTitle    string    `json:"service_title"`
	Price           float64   `json:"price"`
	DurationMinutes *int      `json:"duration_minutes,omitempty"`
	CustomerID      *int64    `json:"customer_id,omitempty"`
	CustomerName    *string   `json:"customer_name,omitempty"`
	CustomerEmail   *string   `json:"customer_email,omitempty"`
	CustomerPhone   *string   `json:"customer_phone,omitempty"`
	BookingDate     time.Time `json:"booking_date"`
	Status          string    `json:"status"`
	Notes           *string   `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func newResponse(b *domain.Booking, s *domain.Service) *Response {
	return &Response{
		ID:              b.ID,
		ProviderID:      b.ProviderID,
		ServiceID:       b.ServiceID,
		ServiceTitle:    s.Title,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		CustomerID:      b.CustomerID,
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		CustomerPhone:   b.CustomerPhone,
		BookingDate:     b.BookingDate,
		Status:          string(b.Status),
		Notes:           b.Notes,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}
