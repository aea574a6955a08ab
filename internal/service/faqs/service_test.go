package faqs

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/booking-platform/internal/domain"
	faqRepo "github.com/m04kA/booking-platform/internal/infra/storage/faq"
	providerRepo "github.com/m04kA/booking-platform/internal/infra/storage/provider"
	"github.com/m04kA/booking-platform/internal/service/faqs/models"
	"github.com/m04kA/booking-platform/pkg/logger"
	"github.com/m04kA/booking-platform/pkg/ptr"
)

type fakeFAQRepo struct {
	items []*domain.FAQ
}

func (r *fakeFAQRepo) Create(_ context.Context, f *domain.FAQ) (*domain.FAQ, error) {
	f.ID = int64(len(r.items) + 1)
	r.items = append(r.items, f)
	return f, nil
}

func (r *fakeFAQRepo) GetByID(_ context.Context, id, providerID int64) (*domain.FAQ, error) {
	for _, it := range r.items {
		if it.ID == id && it.ProviderID == providerID {
			return it, nil
		}
	}
	return nil, faqRepo.ErrFAQNotFound
}

func (r *fakeFAQRepo) ListByProvider(_ context.Context, providerID int64, activeOnly bool) ([]*domain.FAQ, error) {
	var out []*domain.FAQ
	for _, it := range r.items {
		if it.ProviderID == providerID && (!activeOnly || it.IsActive) {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out, nil
}

func (r *fakeFAQRepo) Update(_ context.Context, id, providerID int64, upd domain.FAQUpdate) error {
	for _, it := range r.items {
		if it.ID == id && it.ProviderID == providerID {
			if upd.Question != nil {
				it.Question = *upd.Question
			}
			if upd.Answer != nil {
				it.Answer = *upd.Answer
			}
			if upd.DisplayOrder != nil {
				it.DisplayOrder = *upd.DisplayOrder
			}
			if upd.IsActive != nil {
				it.IsActive = *upd.IsActive
			}
			return nil
		}
	}
	return faqRepo.ErrFAQNotFound
}

func (r *fakeFAQRepo) Delete(_ context.Context, id, providerID int64) error {
	for i, it := range r.items {
		if it.ID == id && it.ProviderID == providerID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return faqRepo.ErrFAQNotFound
}

type fakeProviderRepo struct{}

func (fakeProviderRepo) GetByUserID(_ context.Context, userID int64) (*domain.Provider, error) {
	if userID == 1 || userID == 2 {
		return &domain.Provider{UserID: userID}, nil
	}
	return nil, providerRepo.ErrProviderNotFound
}

func TestFAQLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&fakeFAQRepo{}, fakeProviderRepo{}, logger.NewNop())

	parking, err := svc.Create(ctx, 1, &models.CreateFAQRequest{Question: " Parking? ", Answer: "Yes, free", DisplayOrder: 2})
	require.NoError(t, err)
	assert.Equal(t, "Parking?", parking.Question)
	assert.True(t, parking.IsActive)

	_, err = svc.Create(ctx, 1, &models.CreateFAQRequest{Question: "Cards?", Answer: "Visa", DisplayOrder: 1, IsActive: ptr.Ptr(false)})
	require.NoError(t, err)

	list, err := svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Cards?", list[0].Question)

	updated, err := svc.Update(ctx, 1, parking.ID, &models.UpdateFAQRequest{Answer: ptr.Ptr("Yes, two spots")})
	require.NoError(t, err)
	assert.Equal(t, "Yes, two spots", updated.Answer)
	assert.Equal(t, "Parking?", updated.Question)

	// чужой провайдер не видит вопрос
	_, err = svc.Update(ctx, 2, parking.ID, &models.UpdateFAQRequest{Answer: ptr.Ptr("No")})
	assert.ErrorIs(t, err, ErrFAQNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 2, parking.ID), ErrFAQNotFound)

	require.NoError(t, svc.Delete(ctx, 1, parking.ID))
	list, err = svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  models.CreateFAQRequest
	}{
		{name: "empty question", req: models.CreateFAQRequest{Question: "  ", Answer: "A"}},
		{name: "empty answer", req: models.CreateFAQRequest{Question: "Q", Answer: ""}},
		{name: "negative order", req: models.CreateFAQRequest{Question: "Q", Answer: "A", DisplayOrder: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&fakeFAQRepo{}, fakeProviderRepo{}, logger.NewNop())
			_, err := svc.Create(context.Background(), 1, &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpdate_EmptyRequest(t *testing.T) {
	svc := NewService(&fakeFAQRepo{}, fakeProviderRepo{}, logger.NewNop())

	_, err := svc.Update(context.Background(), 1, 1, &models.UpdateFAQRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestList_RequiresProvider(t *testing.T) {
	svc := NewService(&fakeFAQRepo{}, fakeProviderRepo{}, logger.NewNop())

	_, err := svc.List(context.Background(), 99)
	assert.ErrorIs(t, err, ErrProviderNotFound)
}
