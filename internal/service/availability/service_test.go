package availability

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/booking-platform/internal/domain"
	"github.com/m04kA/booking-platform/internal/service/availability/models"
	"github.com/m04kA/booking-platform/pkg/logger"
	"github.com/m04kA/booking-platform/pkg/ptr"
	"github.com/m04kA/booking-platform/pkg/txmanager"
	"github.com/m04kA/booking-platform/pkg/types"
)

const providerID int64 = 7

// 2025-06-02 понедельник
var monday = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

type testEnv struct {
	svc          *Service
	availability *fakeAvailabilityRepo
	bookings     *fakeBookingRepo
	tx           *fakeTxManager
}

func newTestEnv(loc *time.Location) *testEnv {
	env := &testEnv{
		availability: &fakeAvailabilityRepo{},
		bookings:     &fakeBookingRepo{},
		tx:           &fakeTxManager{},
	}
	env.svc = NewService(
		env.availability,
		env.bookings,
		&fakeProviderRepo{users: map[int64]bool{providerID: true}},
		env.tx,
		loc,
		logger.NewNop(),
	)
	return env
}

func at(hour, minute, second int) time.Time {
	return monday.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute + time.Duration(second)*time.Second)
}

func TestIsSlotAvailable_HalfOpenInterval(t *testing.T) {
	env := newTestEnv(time.UTC)
	env.availability.weekly = []*domain.WeeklySlot{slot(providerID, 1, "09:00", "17:00")}

	tests := []struct {
		name   string
		at     time.Time
		want   bool
		reason string
	}{
		{name: "start is inclusive", at: at(9, 0, 0), want: true},
		{name: "last minute", at: at(16, 59, 0), want: true},
		{name: "end is exclusive", at: at(17, 0, 0), reason: domain.ReasonOutsideHours},
		{name: "before start", at: at(8, 59, 59), reason: domain.ReasonOutsideHours},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := env.svc.IsSlotAvailable(context.Background(), providerID, tt.at)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Available)
			assert.Equal(t, tt.reason, got.Reason)
		})
	}
}

func TestIsSlotAvailable_BlockedDateDominates(t *testing.T) {
	env := newTestEnv(time.UTC)
	env.availability.weekly = []*domain.WeeklySlot{slot(providerID, 1, "09:00", "17:00")}
	env.availability.blocked = []*domain.BlockedDate{{ID: 1, ProviderID: providerID, Date: monday}}
	env.bookings.bookings = []*domain.Booking{{ProviderID: providerID, BookingDate: at(10, 0, 0), Status: domain.StatusPending}}

	for _, instant := range []time.Time{at(10, 0, 0), at(3, 0, 0), at(23, 59, 0)} {
		got, err := env.svc.IsSlotAvailable(context.Background(), providerID, instant)
		require.NoError(t, err)
		assert.False(t, got.Available)
		assert.Equal(t, domain.ReasonDateBlocked, got.Reason)
	}
}

func TestIsSlotAvailable_NoAvailabilityForDay(t *testing.T) {
	env := newTestEnv(time.UTC)
	env.availability.weekly = []*domain.WeeklySlot{
		slot(providerID, 2, "09:00", "17:00"),
		{ProviderID: providerID, DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00", IsAvailable: false},
		slot(providerID+1, 1, "09:00", "17:00"),
	}

	got, err := env.svc.IsSlotAvailable(context.Background(), providerID, at(10, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, domain.NotAvailable(domain.ReasonNoAvailability), got)
}

func TestIsSlotAvailable_OverlappingSlots(t *testing.T) {
	env := newTestEnv(time.UTC)
	env.availability.weekly = []*domain.WeeklySlot{
		slot(providerID, 1, "09:00", "12:00"),
		slot(providerID, 1, "11:00", "14:00"),
	}

	got, err := env.svc.IsSlotAvailable(context.Background(), providerID, at(13, 30, 0))
	require.NoError(t, err)
	assert.True(t, got.Available)
}

func TestIsSlotAvailable_CollisionAtMinuteGranularity(t *testing.T) {
	env := newTestEnv(time.UTC)
	env.availability.weekly = []*domain.WeeklySlot{slot(providerID, 1, "09:00", "17:00")}
	env.bookings.bookings = []*domain.Booking{
		{ProviderID: providerID, BookingDate: at(10, 0, 0), Status: domain.StatusConfirmed},
		{ProviderID: providerID + 1, BookingDate: at(11, 0, 0), Status: domain.StatusConfirmed},
	}

	got, err := env.svc.IsSlotAvailable(context.Background(), providerID, at(10, 0, 45))
	require.NoError(t, err)
	assert.Equal(t, domain.NotAvailable(domain.ReasonAlreadyBooked), got)

	got, err = env.svc.IsSlotAvailable(context.Background(), providerID, at(10, 1, 0))
	require.NoError(t, err)
	assert.True(t, got.Available)

	// бронирование другого провайдера не мешает
	got, err = env.svc.IsSlotAvailable(context.Background(), providerID, at(11, 0, 0))
	require.NoError(t, err)
	assert.True(t, got.Available)
}

func TestIsSlotAvailable_CancelledBookingsDoNotBlock(t *testing.T) {
	env := newTestEnv(time.UTC)
	env.availability.weekly = []*domain.WeeklySlot{slot(providerID, 1, "09:00", "17:00")}
	env.bookings.bookings = []*domain.Booking{
		{ProviderID: providerID, BookingDate: at(10, 0, 0), Status: domain.StatusCancelled},
	}

	got, err := env.svc.IsSlotAvailable(context.Background(), providerID, at(10, 0, 0))
	require.NoError(t, err)
	assert.True(t, got.Available)
}

func TestIsSlotAvailable_UsesPlatformLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	env := newTestEnv(loc)
	env.availability.weekly = []*domain.WeeklySlot{slot(providerID, 1, "09:00", "17:00")}

	// 06:30 UTC = 09:30 по местному времени
	got, err := env.svc.IsSlotAvailable(context.Background(), providerID, at(6, 30, 0))
	require.NoError(t, err)
	assert.True(t, got.Available)

	// воскресенье 22:00 UTC = понедельник 01:00 по местному времени
	got, err = env.svc.IsSlotAvailable(context.Background(), providerID, monday.Add(-2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, domain.ReasonOutsideHours, got.Reason)
}

func TestIsSlotAvailable_StoreErrorPropagates(t *testing.T) {
	env := newTestEnv(time.UTC)
	env.availability.weekly = []*domain.WeeklySlot{slot(providerID, 1, "09:00", "17:00")}
	env.bookings.fail = true

	_, err := env.svc.IsSlotAvailable(context.Background(), providerID, at(10, 0, 0))
	assert.ErrorIs(t, err, ErrInternal)

	env.availability.failOn = "IsDateBlocked"
	_, err = env.svc.IsSlotAvailable(context.Background(), providerID, at(10, 0, 0))
	assert.ErrorIs(t, err, ErrInternal)
}

func TestIsSlotAvailable_SerializationFailureKeepsIdentity(t *testing.T) {
	env := newTestEnv(time.UTC)
	env.availability.weekly = []*domain.WeeklySlot{slot(providerID, 1, "09:00", "17:00")}
	env.bookings.failWith = fmt.Errorf("%w: List - execute query: %w", errStore, &pq.Error{Code: "40001"})

	_, err := env.svc.IsSlotAvailable(context.Background(), providerID, at(10, 0, 0))

	assert.ErrorIs(t, err, ErrInternal)
	assert.True(t, txmanager.IsSerializationFailure(err))
}

func TestListAvailableSlots(t *testing.T) {
	tests := []struct {
		name     string
		weekly   []*domain.WeeklySlot
		bookings []*domain.Booking
		want     []types.TimeString
	}{
		{
			name:   "excludes booked times",
			weekly: []*domain.WeeklySlot{slot(providerID, 1, "09:00", "11:00")},
			bookings: []*domain.Booking{
				{ProviderID: providerID, BookingDate: at(10, 0, 0), Status: domain.StatusPending},
			},
			want: []types.TimeString{"09:00", "09:30", "10:30"},
		},
		{
			name:   "cancelled bookings keep the time free",
			weekly: []*domain.WeeklySlot{slot(providerID, 1, "09:00", "10:00")},
			bookings: []*domain.Booking{
				{ProviderID: providerID, BookingDate: at(9, 30, 0), Status: domain.StatusCancelled},
			},
			want: []types.TimeString{"09:00", "09:30"},
		},
		{
			name:   "step stops before end",
			weekly: []*domain.WeeklySlot{slot(providerID, 1, "09:15", "10:15")},
			want:   []types.TimeString{"09:15", "09:45"},
		},
		{
			name: "slot order kept and overlaps emitted once",
			weekly: []*domain.WeeklySlot{
				slot(providerID, 1, "14:00", "15:00"),
				slot(providerID, 1, "09:00", "10:00"),
				slot(providerID, 1, "09:30", "10:30"),
			},
			want: []types.TimeString{"14:00", "14:30", "09:00", "09:30", "10:00"},
		},
		{
			name:   "no slots for weekday",
			weekly: []*domain.WeeklySlot{slot(providerID, 3, "09:00", "10:00")},
			want:   []types.TimeString{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(time.UTC)
			env.availability.weekly = tt.weekly
			env.bookings.bookings = tt.bookings

			got, err := env.svc.ListAvailableSlots(context.Background(), providerID, monday)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestListAvailableSlots_IgnoresBlockedDates(t *testing.T) {
	env := newTestEnv(time.UTC)
	env.availability.weekly = []*domain.WeeklySlot{slot(providerID, 1, "09:00", "10:00")}
	env.availability.blocked = []*domain.BlockedDate{{ID: 1, ProviderID: providerID, Date: monday}}

	got, err := env.svc.ListAvailableSlots(context.Background(), providerID, monday)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:00", "09:30"}, got)
}

func TestSetWeeklyAvailability_FullReplace(t *testing.T) {
	env := newTestEnv(time.UTC)
	env.availability.weekly = []*domain.WeeklySlot{
		slot(providerID, 1, "08:00", "12:00"),
		slot(providerID, 2, "08:00", "12:00"),
		slot(providerID+1, 1, "08:00", "12:00"),
	}

	req := &models.SetWeeklyRequest{Slots: []models.WeeklySlotInput{
		{DayOfWeek: ptr.Ptr(1), StartTime: "09:00", EndTime: "17:00"},
		{DayOfWeek: ptr.Ptr(5), StartTime: "10:00", EndTime: "14:00", IsAvailable: ptr.Ptr(false)},
	}}

	stored, err := env.svc.SetWeeklyAvailability(context.Background(), providerID, req)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.True(t, stored[0].IsAvailable)
	assert.False(t, stored[1].IsAvailable)
	assert.Equal(t, 1, env.tx.calls)

	got, err := env.svc.GetWeeklyAvailability(context.Background(), providerID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "09:00", got[0].StartTime)
	assert.Equal(t, 5, got[1].DayOfWeek)

	// расписание другого провайдера не тронуто
	other, err := env.availability.ListWeekly(context.Background(), providerID+1)
	require.NoError(t, err)
	assert.Len(t, other, 1)
}

func TestSetWeeklyAvailability_Validation(t *testing.T) {
	tests := []struct {
		name string
		in   models.WeeklySlotInput
	}{
		{name: "missing day", in: models.WeeklySlotInput{StartTime: "09:00", EndTime: "10:00"}},
		{name: "day out of range", in: models.WeeklySlotInput{DayOfWeek: ptr.Ptr(7), StartTime: "09:00", EndTime: "10:00"}},
		{name: "bad time", in: models.WeeklySlotInput{DayOfWeek: ptr.Ptr(1), StartTime: "9am", EndTime: "10:00"}},
		{name: "start not before end", in: models.WeeklySlotInput{DayOfWeek: ptr.Ptr(1), StartTime: "10:00", EndTime: "10:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(time.UTC)
			env.availability.weekly = []*domain.WeeklySlot{slot(providerID, 1, "08:00", "12:00")}

			_, err := env.svc.SetWeeklyAvailability(context.Background(), providerID,
				&models.SetWeeklyRequest{Slots: []models.WeeklySlotInput{tt.in}})

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Len(t, env.availability.weekly, 1)
			assert.Zero(t, env.tx.calls)
		})
	}
}

func TestSetWeeklyAvailability_ProviderRequired(t *testing.T) {
	env := newTestEnv(time.UTC)

	_, err := env.svc.SetWeeklyAvailability(context.Background(), 999, &models.SetWeeklyRequest{})
	assert.ErrorIs(t, err, ErrProviderNotFound)
}

func TestBlockedDates(t *testing.T) {
	env := newTestEnv(time.UTC)
	ctx := context.Background()

	first, err := env.svc.BlockDate(ctx, providerID, &models.BlockDateRequest{Date: "2025-06-02", Reason: ptr.Ptr("holiday")})
	require.NoError(t, err)
	_, err = env.svc.BlockDate(ctx, providerID, &models.BlockDateRequest{Date: "2025-06-10"})
	require.NoError(t, err)

	_, err = env.svc.BlockDate(ctx, providerID, &models.BlockDateRequest{Date: "02.06.2025"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	list, err := env.svc.ListBlockedDates(ctx, providerID, monday, monday.AddDate(0, 0, 8))
	require.NoError(t, err)
	assert.Len(t, list, 2, "range is inclusive")

	list, err = env.svc.ListBlockedDates(ctx, providerID, monday.AddDate(0, 0, 1), monday.AddDate(0, 0, 7))
	require.NoError(t, err)
	assert.Empty(t, list)

	// чужая блокировка
	env.svc.providerRepo = &fakeProviderRepo{users: map[int64]bool{providerID: true, 8: true}}
	assert.ErrorIs(t, env.svc.UnblockDate(ctx, 8, first.ID), ErrBlockedDateNotFound)

	require.NoError(t, env.svc.UnblockDate(ctx, providerID, first.ID))
	assert.ErrorIs(t, env.svc.UnblockDate(ctx, providerID, first.ID), ErrBlockedDateNotFound)
}
