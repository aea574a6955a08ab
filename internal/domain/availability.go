package domain

import (
	"time"

	"github.com/m04kA/booking-platform/pkg/types"
)

// WeeklySlot is a recurring window of bookable time on one weekday.
// The window is half-open: [StartTime, EndTime).
type WeeklySlot struct {
	ID          int64
	ProviderID  int64
	DayOfWeek   int // 0 = Sunday ... 6 = Saturday
	StartTime   types.TimeString
	EndTime     types.TimeString
	IsAvailable bool
	CreatedAt   time.Time
}

// Contains reports whether a time of day falls inside the slot
func (s *WeeklySlot) Contains(t types.TimeString) bool {
	return !t.IsBefore(s.StartTime) && t.IsBefore(s.EndTime)
}

// BlockedDate suppresses bookings for a whole calendar day
type BlockedDate struct {
	ID         int64
	ProviderID int64
	Date       time.Time // calendar date, time part is zero
	Reason     *string
	CreatedAt  time.Time
}

// Availability is the verdict for a single instant
type Availability struct {
	Available bool
	Reason    string // empty when available
}

// Reasons an instant is not bookable
const (
	ReasonDateBlocked    = "Date is blocked"
	ReasonNoAvailability = "No availability set for this day"
	ReasonOutsideHours   = "Time slot is outside business hours"
	ReasonAlreadyBooked  = "Time slot is already booked"
)

// Available is the positive verdict
func Available() Availability {
	return Availability{Available: true}
}

// NotAvailable builds a negative verdict
func NotAvailable(reason string) Availability {
	return Availability{Available: false, Reason: reason}
}
