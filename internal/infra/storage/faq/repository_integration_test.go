package faq

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/booking-platform/internal/domain"
	"github.com/m04kA/booking-platform/internal/infra/storage/storagetest"
	"github.com/m04kA/booking-platform/pkg/dbmetrics"
	"github.com/m04kA/booking-platform/pkg/ptr"
)

func TestRepository_ListOrderAndActiveFilter(t *testing.T) {
	db := storagetest.OpenDB(t)
	providerID := storagetest.CreateUser(t, db, "provider")
	repo := NewRepository(dbmetrics.Wrap(db, nil))
	ctx := context.Background()

	for _, f := range []*domain.FAQ{
		{ProviderID: providerID, Question: "Parking?", Answer: "Yes", DisplayOrder: 2, IsActive: true},
		{ProviderID: providerID, Question: "Cards?", Answer: "Visa only", DisplayOrder: 1, IsActive: true},
		{ProviderID: providerID, Question: "Draft", Answer: "tbd", DisplayOrder: 0, IsActive: false},
	} {
		_, err := repo.Create(ctx, f)
		require.NoError(t, err)
	}

	all, err := repo.ListByProvider(ctx, providerID, false)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Draft", all[0].Question)

	active, err := repo.ListByProvider(ctx, providerID, true)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "Cards?", active[0].Question)
	assert.Equal(t, "Parking?", active[1].Question)
}

func TestRepository_UpdateAndDeleteAreScopedToProvider(t *testing.T) {
	db := storagetest.OpenDB(t)
	providerID := storagetest.CreateUser(t, db, "provider")
	otherID := storagetest.CreateUser(t, db, "provider")
	repo := NewRepository(dbmetrics.Wrap(db, nil))
	ctx := context.Background()

	f, err := repo.Create(ctx, &domain.FAQ{ProviderID: providerID, Question: "Q", Answer: "A", IsActive: true})
	require.NoError(t, err)

	assert.ErrorIs(t, repo.Update(ctx, f.ID, otherID, domain.FAQUpdate{Answer: ptr.Ptr("stolen")}), ErrFAQNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, f.ID, otherID), ErrFAQNotFound)
	_, err = repo.GetByID(ctx, f.ID, otherID)
	assert.ErrorIs(t, err, ErrFAQNotFound)

	require.NoError(t, repo.Update(ctx, f.ID, providerID, domain.FAQUpdate{Answer: ptr.Ptr("B"), IsActive: ptr.Ptr(false)}))
	got, err := repo.GetByID(ctx, f.ID, providerID)
	require.NoError(t, err)
	assert.Equal(t, "Q", got.Question)
	assert.Equal(t, "B", got.Answer)
	assert.False(t, got.IsActive)

	require.NoError(t, repo.Delete(ctx, f.ID, providerID))
	_, err = repo.GetByID(ctx, f.ID, providerID)
	assert.ErrorIs(t, err, ErrFAQNotFound)
}
