package domain

import "time"

// Service is an offering in a provider's catalog
type Service struct {
	ID              int64
	ProviderID      int64 // user id of the provider
	Title           string
	Description     *string
	Category        *string
	Price           float64
	DurationMinutes *int
	ImageURL        *string
	IsActive        bool
	DisplayOrder    int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ServiceUpdate partial update of a service, nil fields are kept
type ServiceUpdate struct {
	Title           *string
	Description     *string
	Category        *string
	Price           *float64
	DurationMinutes *int
	ImageURL        *string
	IsActive        *bool
}
