package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking kinds used for metrics and logs
const (
	BookingKindCustomer = "customer"
	BookingKindGuest    = "guest"
)

// Booking represents a reservation of a provider's service at an instant
// Either CustomerID is set (registered customer) or the guest contact fields are.
type Booking struct {
	ID          int64
	ProviderID  int64 // user id of the provider
	ServiceID   int64
	CustomerID  *int64
	BookingDate time.Time
	Status      BookingStatus
	Notes       *string

	// Guest contact
	CustomerName  *string
	CustomerEmail *string
	CustomerPhone *string

	// Read-side denormalized data
	ServiceTitle string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsGuest returns true for bookings made without an account
func (b *Booking) IsGuest() bool {
	return b.CustomerID == nil
}

// IsOwnedByCustomer returns true if the booking belongs to the given customer
func (b *Booking) IsOwnedByCustomer(customerID int64) bool {
	return b.CustomerID != nil && *b.CustomerID == customerID
}

// CanTransitionTo checks the provider-driven lifecycle:
// pending -> confirmed -> completed, and any non-cancelled state -> cancelled.
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	switch next {
	case StatusCancelled:
		return b.Status != StatusCancelled
	case StatusConfirmed:
		return b.Status == StatusPending
	case StatusCompleted:
		return b.Status == StatusConfirmed
	default:
		return false
	}
}

// ParseBookingStatus validates a status value
func ParseBookingStatus(s string) (BookingStatus, bool) {
	status := BookingStatus(s)
	for _, valid := range AllStatuses {
		if status == valid {
			return status, true
		}
	}
	return "", false
}

// BookingsFilter filter for listing bookings of a provider or customer
type BookingsFilter struct {
	ProviderID    *int64
	CustomerID    *int64
	CustomerEmail *string // guest lookup
	Status        *BookingStatus
	From          *time.Time
	To            *time.Time // exclusive
	ActiveOnly    bool
}
