package domain

import "time"

// FAQ is a question/answer pair shown to customers and fed to the AI assistant when active
type FAQ struct {
	ID           int64
	ProviderID   int64 // user id of the provider
	Question     string
	Answer       string
	DisplayOrder int
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FAQUpdate partial update of an FAQ, nil fields are kept
type FAQUpdate struct {
	Question     *string
	Answer       *string
	DisplayOrder *int
	IsActive     *bool
}

// BusinessInfo free-form details a provider keeps next to the profile, one row per provider.
// BusinessHours is only a fallback for providers without a weekly schedule.
type BusinessInfo struct {
	ProviderID      int64
	BusinessHours   *string
	LocationDetails *string
	Policies        *string
	OtherInfo       *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsEmpty reports whether no field is set
func (b *BusinessInfo) IsEmpty() bool {
	return b.BusinessHours == nil && b.LocationDetails == nil && b.Policies == nil && b.OtherInfo == nil
}

// Review is a customer rating of a completed booking, at most one per booking
type Review struct {
	ID         int64
	BookingID  int64
	CustomerID int64
	ServiceID  int64
	ProviderID int64
	Rating     int
	Comment    *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Filled by list queries
	CustomerName string
	ServiceTitle string
}

// RatingSummary average rating and review count; Average is nil without reviews
type RatingSummary struct {
	Average *float64
	Count   int
}
