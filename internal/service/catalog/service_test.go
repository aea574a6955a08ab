package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/booking-platform/internal/domain"
	catalogRepo "github.com/m04kA/booking-platform/internal/infra/storage/catalog"
	providerRepo "github.com/m04kA/booking-platform/internal/infra/storage/provider"
	"github.com/m04kA/booking-platform/internal/service/catalog/models"
	"github.com/m04kA/booking-platform/pkg/logger"
	"github.com/m04kA/booking-platform/pkg/ptr"
)

type fakeServiceRepo struct {
	items []*domain.Service
}

func (r *fakeServiceRepo) Create(_ context.Context, s *domain.Service) (*domain.Service, error) {
	maxOrder := 0
	for _, it := range r.items {
		if it.ProviderID == s.ProviderID && it.DisplayOrder > maxOrder {
			maxOrder = it.DisplayOrder
		}
	}
	s.ID = int64(len(r.items) + 1)
	s.DisplayOrder = maxOrder + 1
	r.items = append(r.items, s)
	return s, nil
}

func (r *fakeServiceRepo) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	for _, it := range r.items {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, catalogRepo.ErrServiceNotFound
}

func (r *fakeServiceRepo) ListByProvider(_ context.Context, providerID int64, activeOnly bool) ([]*domain.Service, error) {
	var out []*domain.Service
	for _, it := range r.items {
		if it.ProviderID == providerID && (!activeOnly || it.IsActive) {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *fakeServiceRepo) Update(_ context.Context, id, providerID int64, upd domain.ServiceUpdate) error {
	for _, it := range r.items {
		if it.ID == id && it.ProviderID == providerID {
			if upd.Title != nil {
				it.Title = *upd.Title
			}
			if upd.IsActive != nil {
				it.IsActive = *upd.IsActive
			}
			if upd.Price != nil {
				it.Price = *upd.Price
			}
			return nil
		}
	}
	return catalogRepo.ErrServiceNotFound
}

func (r *fakeServiceRepo) Delete(_ context.Context, id, providerID int64) error {
	for i, it := range r.items {
		if it.ID == id && it.ProviderID == providerID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return catalogRepo.ErrServiceNotFound
}

type fakeProviderRepo struct{}

func (fakeProviderRepo) GetByUserID(_ context.Context, userID int64) (*domain.Provider, error) {
	if userID == 1 || userID == 2 {
		return &domain.Provider{UserID: userID}, nil
	}
	return nil, providerRepo.ErrProviderNotFound
}

func TestCatalogLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := &fakeServiceRepo{}
	svc := NewService(repo, fakeProviderRepo{}, logger.NewNop())

	first, err := svc.Create(ctx, 1, &models.CreateServiceRequest{Title: "Haircut", Price: 25})
	require.NoError(t, err)
	second, err := svc.Create(ctx, 1, &models.CreateServiceRequest{Title: "Shave", Price: 10, IsActive: ptr.Ptr(false)})
	require.NoError(t, err)

	assert.Equal(t, 1, first.DisplayOrder)
	assert.Equal(t, 2, second.DisplayOrder)
	assert.True(t, first.IsActive)

	active, err := svc.ListByProvider(ctx, 1, true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Haircut", active[0].Title)

	all, err := svc.ListByProvider(ctx, 1, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	updated, err := svc.Update(ctx, 1, second.ID, &models.UpdateServiceRequest{IsActive: ptr.Ptr(true), Price: ptr.Ptr(12.5)})
	require.NoError(t, err)
	assert.True(t, updated.IsActive)
	assert.Equal(t, 12.5, updated.Price)

	// чужой провайдер не может менять и удалять услугу
	_, err = svc.Update(ctx, 2, second.ID, &models.UpdateServiceRequest{Title: ptr.Ptr("Stolen")})
	assert.ErrorIs(t, err, ErrServiceNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 2, second.ID), ErrServiceNotFound)

	require.NoError(t, svc.Delete(ctx, 1, second.ID))
	_, err = svc.GetByID(ctx, second.ID)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  models.CreateServiceRequest
	}{
		{name: "empty title", req: models.CreateServiceRequest{Title: " ", Price: 1}},
		{name: "negative price", req: models.CreateServiceRequest{Title: "A", Price: -1}},
		{name: "zero duration", req: models.CreateServiceRequest{Title: "A", DurationMinutes: ptr.Ptr(0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&fakeServiceRepo{}, fakeProviderRepo{}, logger.NewNop())
			_, err := svc.Create(context.Background(), 1, &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCreate_RequiresProvider(t *testing.T) {
	svc := NewService(&fakeServiceRepo{}, fakeProviderRepo{}, logger.NewNop())

	_, err := svc.Create(context.Background(), 99, &models.CreateServiceRequest{Title: "A"})
	assert.ErrorIs(t, err, ErrProviderNotFound)
}
