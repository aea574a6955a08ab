package domain

// Slot enumeration
const (
	SlotStepMinutes = 30
)

// Business validation constants
const (
	MaxNotesLength        = 1000
	MaxBusinessNameLength = 255
	MaxServiceTitleLength = 255
	MaxChatMessageLength  = 2000
	MaxChatHistory        = 20
	MaxBlockedRangeDays   = 366
	MaxFAQLength          = 2000
	MaxBusinessInfoLength = 5000
	MaxReviewComment      = 2000
	MinRating             = 1
	MaxRating             = 5
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// AllStatuses every valid booking status
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}

// InactiveStatuses statuses that no longer occupy a slot
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}
