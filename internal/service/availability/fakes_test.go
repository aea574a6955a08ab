package availability

import (
	"context"
	"errors"
	"time"

	"github.com/m04kA/booking-platform/internal/domain"
	availabilityRepo "github.com/m04kA/booking-platform/internal/infra/storage/availability"
	providerRepo "github.com/m04kA/booking-platform/internal/infra/storage/provider"
	"github.com/m04kA/booking-platform/pkg/types"
)

var errStore = errors.New("store is down")

type fakeAvailabilityRepo struct {
	weekly  []*domain.WeeklySlot
	blocked []*domain.BlockedDate
	nextID  int64
	failOn  string
}

func (r *fakeAvailabilityRepo) id() int64 {
	r.nextID++
	return r.nextID
}

func (r *fakeAvailabilityRepo) ListWeekly(_ context.Context, providerID int64) ([]*domain.WeeklySlot, error) {
	if r.failOn == "ListWeekly" {
		return nil, errStore
	}
	var out []*domain.WeeklySlot
	for _, s := range r.weekly {
		if s.ProviderID == providerID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeAvailabilityRepo) ListAvailableForDay(_ context.Context, providerID int64, dayOfWeek int) ([]*domain.WeeklySlot, error) {
	if r.failOn == "ListAvailableForDay" {
		return nil, errStore
	}
	var out []*domain.WeeklySlot
	for _, s := range r.weekly {
		if s.ProviderID == providerID && s.DayOfWeek == dayOfWeek && s.IsAvailable {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeAvailabilityRepo) DeleteWeekly(_ context.Context, providerID int64) error {
	kept := make([]*domain.WeeklySlot, 0, len(r.weekly))
	for _, s := range r.weekly {
		if s.ProviderID != providerID {
			kept = append(kept, s)
		}
	}
	r.weekly = kept
	return nil
}

func (r *fakeAvailabilityRepo) CreateWeekly(_ context.Context, slot *domain.WeeklySlot) (*domain.WeeklySlot, error) {
	if r.failOn == "CreateWeekly" {
		return nil, errStore
	}
	slot.ID = r.id()
	r.weekly = append(r.weekly, slot)
	return slot, nil
}

func (r *fakeAvailabilityRepo) CreateBlockedDate(_ context.Context, b *domain.BlockedDate) (*domain.BlockedDate, error) {
	b.ID = r.id()
	r.blocked = append(r.blocked, b)
	return b, nil
}

func (r *fakeAvailabilityRepo) IsDateBlocked(_ context.Context, providerID int64, date time.Time) (bool, error) {
	if r.failOn == "IsDateBlocked" {
		return false, errStore
	}
	for _, b := range r.blocked {
		if b.ProviderID == providerID && b.Date.Format(domain.DateFormat) == date.Format(domain.DateFormat) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeAvailabilityRepo) ListBlockedDates(_ context.Context, providerID int64, start, end time.Time) ([]*domain.BlockedDate, error) {
	var out []*domain.BlockedDate
	from, to := start.Format(domain.DateFormat), end.Format(domain.DateFormat)
	for _, b := range r.blocked {
		d := b.Date.Format(domain.DateFormat)
		if b.ProviderID == providerID && d >= from && d <= to {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeAvailabilityRepo) DeleteBlockedDate(_ context.Context, providerID, blockID int64) error {
	for i, b := range r.blocked {
		if b.ID == blockID && b.ProviderID == providerID {
			r.blocked = append(r.blocked[:i], r.blocked[i+1:]...)
			return nil
		}
	}
	return availabilityRepo.ErrBlockedDateNotFound
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
	fail     bool
	failWith error
}

func (r *fakeBookingRepo) List(_ context.Context, f domain.BookingsFilter) ([]*domain.Booking, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	if r.fail {
		return nil, errStore
	}
	var out []*domain.Booking
	for _, b := range r.bookings {
		if f.ProviderID != nil && b.ProviderID != *f.ProviderID {
			continue
		}
		if f.From != nil && b.BookingDate.Before(*f.From) {
			continue
		}
		if f.To != nil && !b.BookingDate.Before(*f.To) {
			continue
		}
		if f.ActiveOnly && !b.IsActive() {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

type fakeProviderRepo struct {
	users map[int64]bool
}

func (r *fakeProviderRepo) GetByUserID(_ context.Context, userID int64) (*domain.Provider, error) {
	if !r.users[userID] {
		return nil, providerRepo.ErrProviderNotFound
	}
	return &domain.Provider{UserID: userID}, nil
}

type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

func slot(providerID int64, day int, start, end string) *domain.WeeklySlot {
	return &domain.WeeklySlot{
		ProviderID:  providerID,
		DayOfWeek:   day,
		StartTime:   types.TimeString(start),
		EndTime:     types.TimeString(end),
		IsAvailable: true,
	}
}
