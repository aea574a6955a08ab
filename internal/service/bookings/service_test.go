package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/booking-platform/internal/domain"
	bookingRepo "github.com/m04kA/booking-platform/internal/infra/storage/booking"
	"github.com/m04kA/booking-platform/internal/service/bookings/models"
	notificationModels "github.com/m04kA/booking-platform/internal/service/notifications/models"
	"github.com/m04kA/booking-platform/pkg/logger"
	"github.com/m04kA/booking-platform/pkg/ptr"
)

const (
	providerID int64 = 10
	customerID int64 = 20
)

type fakeBookingRepo struct {
	bookings   map[int64]*domain.Booking
	lastFilter domain.BookingsFilter
}

func newFakeBookingRepo(list ...*domain.Booking) *fakeBookingRepo {
	r := &fakeBookingRepo{bookings: map[int64]*domain.Booking{}}
	for _, b := range list {
		r.bookings[b.ID] = b
	}
	return r
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	r.lastFilter = filter
	var out []*domain.Booking
	for _, b := range r.bookings {
		if filter.CustomerID != nil && !b.IsOwnedByCustomer(*filter.CustomerID) {
			continue
		}
		if filter.ProviderID != nil && b.ProviderID != *filter.ProviderID {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, id, provider int64, status domain.BookingStatus) error {
	b, ok := r.bookings[id]
	if !ok || b.ProviderID != provider {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

func (r *fakeBookingRepo) CancelByCustomer(_ context.Context, id, customer int64) error {
	b, ok := r.bookings[id]
	if !ok || !b.IsOwnedByCustomer(customer) {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = domain.StatusCancelled
	return nil
}

type statusChange struct {
	bookingID int64
	from, to  domain.BookingStatus
}

type fakeNotifier struct {
	changes []statusChange
	err     error
}

func (n *fakeNotifier) SendStatusUpdate(_ context.Context, b *domain.Booking, oldStatus, newStatus domain.BookingStatus) error {
	n.changes = append(n.changes, statusChange{bookingID: b.ID, from: oldStatus, to: newStatus})
	return n.err
}

func (n *fakeNotifier) ListByBooking(_ context.Context, bookingID int64) ([]notificationModels.NotificationResponse, error) {
	return []notificationModels.NotificationResponse{{BookingID: bookingID}}, nil
}

func booking(id int64, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		ProviderID:  providerID,
		ServiceID:   1,
		CustomerID:  ptr.Ptr(customerID),
		BookingDate: time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
		Status:      status,
	}
}

func TestGetByID_Visibility(t *testing.T) {
	repo := newFakeBookingRepo(booking(1, domain.StatusPending))
	svc := NewService(repo, &fakeNotifier{}, logger.NewNop())
	ctx := context.Background()

	tests := []struct {
		name     string
		userID   int64
		userType domain.UserType
		wantErr  error
	}{
		{name: "owner customer", userID: customerID, userType: domain.UserTypeCustomer},
		{name: "owner provider", userID: providerID, userType: domain.UserTypeProvider},
		{name: "other customer", userID: 99, userType: domain.UserTypeCustomer, wantErr: ErrBookingNotFound},
		{name: "other provider", userID: 99, userType: domain.UserTypeProvider, wantErr: ErrBookingNotFound},
		{name: "provider id used as customer", userID: providerID, userType: domain.UserTypeCustomer, wantErr: ErrBookingNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.GetByID(ctx, 1, tt.userID, tt.userType)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(1), resp.ID)
		})
	}

	_, err := svc.GetByID(ctx, 404, customerID, domain.UserTypeCustomer)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdateStatus(t *testing.T) {
	tests := []struct {
		name       string
		from       domain.BookingStatus
		to         string
		wantErr    error
		wantEmails int
	}{
		{name: "confirm pending", from: domain.StatusPending, to: "confirmed", wantEmails: 1},
		{name: "complete confirmed", from: domain.StatusConfirmed, to: "completed", wantEmails: 1},
		{name: "cancel pending", from: domain.StatusPending, to: "cancelled", wantEmails: 1},
		{name: "same status is a no-op", from: domain.StatusConfirmed, to: "confirmed"},
		{name: "unknown status", from: domain.StatusPending, to: "no_show", wantErr: ErrInvalidStatus},
		{name: "complete pending", from: domain.StatusPending, to: "completed", wantErr: ErrInvalidTransition},
		{name: "revive cancelled", from: domain.StatusCancelled, to: "pending", wantErr: ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeBookingRepo(booking(1, tt.from))
			notifier := &fakeNotifier{}
			svc := NewService(repo, notifier, logger.NewNop())

			resp, err := svc.UpdateStatus(context.Background(), 1, providerID, &models.UpdateStatusRequest{Status: tt.to})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.from, repo.bookings[1].Status)
				assert.Empty(t, notifier.changes)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.to, resp.Status)
			assert.Equal(t, domain.BookingStatus(tt.to), repo.bookings[1].Status)
			assert.Len(t, notifier.changes, tt.wantEmails)
		})
	}
}

func TestUpdateStatus_EmailFailureDoesNotFail(t *testing.T) {
	repo := newFakeBookingRepo(booking(1, domain.StatusPending))
	notifier := &fakeNotifier{err: errors.New("smtp down")}
	svc := NewService(repo, notifier, logger.NewNop())

	resp, err := svc.UpdateStatus(context.Background(), 1, providerID, &models.UpdateStatusRequest{Status: "confirmed"})

	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
	require.Len(t, notifier.changes, 1)
	assert.Equal(t, statusChange{bookingID: 1, from: domain.StatusPending, to: domain.StatusConfirmed}, notifier.changes[0])
}

func TestUpdateStatus_ForeignProvider(t *testing.T) {
	repo := newFakeBookingRepo(booking(1, domain.StatusPending))
	svc := NewService(repo, &fakeNotifier{}, logger.NewNop())

	_, err := svc.UpdateStatus(context.Background(), 1, 99, &models.UpdateStatusRequest{Status: "confirmed"})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel(t *testing.T) {
	repo := newFakeBookingRepo(booking(1, domain.StatusConfirmed), booking(2, domain.StatusCancelled))
	svc := NewService(repo, &fakeNotifier{}, logger.NewNop())
	ctx := context.Background()

	_, err := svc.Cancel(ctx, 1, 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	resp, err := svc.Cancel(ctx, 1, customerID)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Status)

	_, err = svc.Cancel(ctx, 2, customerID)
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestGetProviderBookings_Filter(t *testing.T) {
	repo := newFakeBookingRepo(booking(1, domain.StatusPending))
	svc := NewService(repo, &fakeNotifier{}, logger.NewNop())
	ctx := context.Background()

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)

	resp, err := svc.GetProviderBookings(ctx, &models.ListProviderBookingsRequest{
		ProviderID: providerID,
		StartDate:  &start,
		EndDate:    &end,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)

	f := repo.lastFilter
	assert.True(t, f.ActiveOnly)
	assert.Equal(t, start, *f.From)
	assert.Equal(t, end.AddDate(0, 0, 1), *f.To, "end date is inclusive")

	_, err = svc.GetProviderBookings(ctx, &models.ListProviderBookingsRequest{ProviderID: providerID, Status: ptr.Ptr("cancelled")})
	require.NoError(t, err)
	assert.False(t, repo.lastFilter.ActiveOnly)

	_, err = svc.GetProviderBookings(ctx, &models.ListProviderBookingsRequest{ProviderID: providerID, Status: ptr.Ptr("lost")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.GetProviderBookings(ctx, &models.ListProviderBookingsRequest{ProviderID: providerID, StartDate: &end, EndDate: &start})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetGuestBookings(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := NewService(repo, &fakeNotifier{}, logger.NewNop())
	ctx := context.Background()

	resp, err := svc.GetGuestBookings(ctx, " Jane@Example.COM ")
	require.NoError(t, err)
	assert.NotNil(t, resp.Bookings)
	assert.Equal(t, "jane@example.com", *repo.lastFilter.CustomerEmail)

	_, err = svc.GetGuestBookings(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.GetGuestBookings(ctx, "not-an-email")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListNotifications(t *testing.T) {
	repo := newFakeBookingRepo(booking(1, domain.StatusPending))
	svc := NewService(repo, &fakeNotifier{}, logger.NewNop())

	list, err := svc.ListNotifications(context.Background(), 1, providerID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.ListNotifications(context.Background(), 1, 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
