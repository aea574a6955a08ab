package create_booking

import (
	"errors"
	"time"

	createBooking "github.com/m04kA/booking-platform/internal/usecase/create_booking"
)

var (
	errMissingFields = errors.New("service_id and booking_date are required")
	errInvalidDate   = errors.New("invalid booking_date format")
)

// CreateBookingRequest HTTP запрос покупателя
type CreateBookingRequest struct {
	ServiceID   int64   `json:"service_id"`
	BookingDate string  `json:"booking_date"` // RFC3339
	Notes       *string `json:"notes,omitempty"`
}

// CreateGuestBookingRequest HTTP запрос гостя
type CreateGuestBookingRequest struct {
	CreateBookingRequest
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
	CustomerPhone *string `json:"customer_phone,omitempty"`
}

// CreateBookingResponse HTTP ответ
type CreateBookingResponse struct {
	Message string                  `json:"message"`
	Booking *createBooking.Response `json:"booking"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	if r.ServiceID <= 0 || r.BookingDate == "" {
		return nil, errMissingFields
	}

	bookingDate, err := time.Parse(time.RFC3339, r.BookingDate)
	if err != nil {
		return nil, errInvalidDate
	}

	return &createBooking.Request{
		ServiceID:   r.ServiceID,
		BookingDate: bookingDate,
		Notes:       r.Notes,
	}, nil
}

// ToUseCaseRequest конвертирует HTTP запрос гостя в модель use case
func (r *CreateGuestBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	req, err := r.CreateBookingRequest.ToUseCaseRequest()
	if err != nil {
		return nil, err
	}
	req.Guest = &createBooking.GuestContact{
		Name:  r.CustomerName,
		Email: r.CustomerEmail,
		Phone: r.CustomerPhone,
	}
	return req, nil
}
