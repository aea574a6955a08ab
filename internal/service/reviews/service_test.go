package reviews

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/booking-platform/internal/domain"
	bookingRepo "github.com/m04kA/booking-platform/internal/infra/storage/booking"
	reviewRepo "github.com/m04kA/booking-platform/internal/infra/storage/review"
	"github.com/m04kA/booking-platform/internal/service/reviews/models"
	"github.com/m04kA/booking-platform/pkg/logger"
	"github.com/m04kA/booking-platform/pkg/ptr"
)

type fakeReviewRepo struct {
	items []*domain.Review
}

func (r *fakeReviewRepo) Create(_ context.Context, rv *domain.Review) (*domain.Review, error) {
	for _, it := range r.items {
		if it.BookingID == rv.BookingID {
			return nil, reviewRepo.ErrReviewExists
		}
	}
	rv.ID = int64(len(r.items) + 1)
	r.items = append(r.items, rv)
	return rv, nil
}

func (r *fakeReviewRepo) GetByID(_ context.Context, id int64) (*domain.Review, error) {
	for _, it := range r.items {
		if it.ID == id {
			cp := *it
			return &cp, nil
		}
	}
	return nil, reviewRepo.ErrReviewNotFound
}

func (r *fakeReviewRepo) filter(match func(*domain.Review) bool) []*domain.Review {
	var out []*domain.Review
	for _, it := range r.items {
		if match(it) {
			out = append(out, it)
		}
	}
	return out
}

func (r *fakeReviewRepo) ListByProvider(_ context.Context, providerID int64) ([]*domain.Review, error) {
	return r.filter(func(rv *domain.Review) bool { return rv.ProviderID == providerID }), nil
}

func (r *fakeReviewRepo) ListByService(_ context.Context, serviceID int64) ([]*domain.Review, error) {
	return r.filter(func(rv *domain.Review) bool { return rv.ServiceID == serviceID }), nil
}

func summarize(list []*domain.Review) domain.RatingSummary {
	if len(list) == 0 {
		return domain.RatingSummary{}
	}
	sum := 0
	for _, rv := range list {
		sum += rv.Rating
	}
	avg := float64(sum) / float64(len(list))
	return domain.RatingSummary{Average: &avg, Count: len(list)}
}

func (r *fakeReviewRepo) RatingByProvider(ctx context.Context, providerID int64) (domain.RatingSummary, error) {
	list, _ := r.ListByProvider(ctx, providerID)
	return summarize(list), nil
}

func (r *fakeReviewRepo) RatingByService(ctx context.Context, serviceID int64) (domain.RatingSummary, error) {
	list, _ := r.ListByService(ctx, serviceID)
	return summarize(list), nil
}

func (r *fakeReviewRepo) Update(_ context.Context, id, customerID int64, rating int, comment *string) error {
	for _, it := range r.items {
		if it.ID == id && it.CustomerID == customerID {
			it.Rating = rating
			it.Comment = comment
			return nil
		}
	}
	return reviewRepo.ErrReviewNotFound
}

func (r *fakeReviewRepo) Delete(_ context.Context, id, customerID int64) error {
	for i, it := range r.items {
		if it.ID == id && it.CustomerID == customerID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return reviewRepo.ErrReviewNotFound
}

type fakeBookingRepo map[int64]*domain.Booking

func (r fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if b, ok := r[id]; ok {
		return b, nil
	}
	return nil, bookingRepo.ErrBookingNotFound
}

const (
	customerID = int64(10)
	providerID = int64(1)
	serviceID  = int64(5)
)

func newService() (*Service, *fakeReviewRepo) {
	bookings := fakeBookingRepo{
		1: {ID: 1, ProviderID: providerID, ServiceID: serviceID, CustomerID: ptr.Ptr(customerID), Status: domain.StatusCompleted},
		2: {ID: 2, ProviderID: providerID, ServiceID: serviceID, CustomerID: ptr.Ptr(customerID), Status: domain.StatusConfirmed},
		3: {ID: 3, ProviderID: providerID, ServiceID: serviceID, CustomerID: ptr.Ptr(int64(11)), Status: domain.StatusCompleted},
		4: {ID: 4, ProviderID: providerID, ServiceID: 6, CustomerID: ptr.Ptr(customerID), Status: domain.StatusCompleted},
		5: {ID: 5, ProviderID: providerID, ServiceID: serviceID, CustomerName: ptr.Ptr("Guest"), Status: domain.StatusCompleted},
	}
	repo := &fakeReviewRepo{}
	return NewService(repo, bookings, logger.NewNop()), repo
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	created, err := svc.Create(ctx, customerID, &models.CreateReviewRequest{
		BookingID: 1,
		Rating:    5,
		Comment:   ptr.Ptr("<b>Great</b> cut"),
	})
	require.NoError(t, err)
	assert.Equal(t, serviceID, created.ServiceID)
	assert.Equal(t, providerID, created.ProviderID)
	assert.Equal(t, "Great cut", ptr.Deref(created.Comment, ""))

	_, err = svc.Create(ctx, customerID, &models.CreateReviewRequest{BookingID: 1, Rating: 1})
	assert.ErrorIs(t, err, ErrReviewExists)
}

func TestCreate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     models.CreateReviewRequest
		wantErr error
	}{
		{name: "rating too low", req: models.CreateReviewRequest{BookingID: 1, Rating: 0}, wantErr: ErrInvalidInput},
		{name: "rating too high", req: models.CreateReviewRequest{BookingID: 1, Rating: 6}, wantErr: ErrInvalidInput},
		{name: "missing booking id", req: models.CreateReviewRequest{Rating: 3}, wantErr: ErrInvalidInput},
		{name: "unknown booking", req: models.CreateReviewRequest{BookingID: 99, Rating: 3}, wantErr: ErrBookingNotFound},
		{name: "someone else's booking", req: models.CreateReviewRequest{BookingID: 3, Rating: 3}, wantErr: ErrBookingNotFound},
		{name: "guest booking", req: models.CreateReviewRequest{BookingID: 5, Rating: 3}, wantErr: ErrBookingNotFound},
		{name: "not completed", req: models.CreateReviewRequest{BookingID: 2, Rating: 3}, wantErr: ErrNotCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newService()
			_, err := svc.Create(context.Background(), customerID, &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRatings(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	empty, err := svc.ProviderRating(ctx, providerID)
	require.NoError(t, err)
	assert.Nil(t, empty.AverageRating)
	assert.Zero(t, empty.ReviewCount)

	_, err = svc.Create(ctx, customerID, &models.CreateReviewRequest{BookingID: 1, Rating: 5})
	require.NoError(t, err)
	_, err = svc.Create(ctx, customerID, &models.CreateReviewRequest{BookingID: 4, Rating: 4})
	require.NoError(t, err)

	byProvider, err := svc.ProviderRating(ctx, providerID)
	require.NoError(t, err)
	require.NotNil(t, byProvider.AverageRating)
	assert.Equal(t, 4.5, *byProvider.AverageRating)
	assert.Equal(t, 2, byProvider.ReviewCount)

	byService, err := svc.ServiceRating(ctx, serviceID)
	require.NoError(t, err)
	assert.Equal(t, 1, byService.ReviewCount)

	list, err := svc.ListByService(ctx, 6)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 4, list[0].Rating)
}

func TestFromRatingSummary_Rounds(t *testing.T) {
	avg := 4.666666
	resp := models.FromRatingSummary(domain.RatingSummary{Average: &avg, Count: 3})
	assert.Equal(t, 4.7, *resp.AverageRating)
}

func TestUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	svc, repo := newService()

	created, err := svc.Create(ctx, customerID, &models.CreateReviewRequest{BookingID: 1, Rating: 5, Comment: ptr.Ptr("ok")})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, customerID, created.ID, &models.UpdateReviewRequest{Rating: ptr.Ptr(3)})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Rating)
	assert.Equal(t, "ok", ptr.Deref(updated.Comment, ""), "comment is kept when omitted")

	// чужой отзыв не видно
	_, err = svc.Update(ctx, 11, created.ID, &models.UpdateReviewRequest{Rating: ptr.Ptr(1)})
	assert.ErrorIs(t, err, ErrReviewNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 11, created.ID), ErrReviewNotFound)

	_, err = svc.Update(ctx, customerID, created.ID, &models.UpdateReviewRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	require.NoError(t, svc.Delete(ctx, customerID, created.ID))
	assert.Empty(t, repo.items)
}
