package get_provider_bookings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/booking-platform/internal/api/middleware"
	"github.com/m04kA/booking-platform/internal/domain"
	"github.com/m04kA/booking-platform/internal/service/bookings/models"
	"github.com/m04kA/booking-platform/pkg/logger"
)

type stubService struct {
	got *models.ListProviderBookingsRequest
}

func (s *stubService) GetProviderBookings(_ context.Context, req *models.ListProviderBookingsRequest) (*models.BookingListResponse, error) {
	s.got = req
	return &models.BookingListResponse{Bookings: []models.BookingResponse{}}, nil
}

func TestToServiceRequest(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)

	req, err := ToServiceRequest(7, "confirmed", "2025-06-01", "2025-06-30", "true", loc)
	require.NoError(t, err)

	assert.Equal(t, int64(7), req.ProviderID)
	assert.Equal(t, "confirmed", *req.Status)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, loc), *req.StartDate)
	assert.Equal(t, time.Date(2025, 6, 30, 0, 0, 0, 0, loc), *req.EndDate)
	assert.True(t, req.IncludeInactive)

	_, err = ToServiceRequest(7, "", "06/01/2025", "", "", loc)
	assert.Error(t, err)
	_, err = ToServiceRequest(7, "", "", "", "maybe", loc)
	assert.Error(t, err)
}

func TestHandle(t *testing.T) {
	svc := &stubService{}
	h := NewHandler(svc, time.UTC, logger.NewNop())

	r := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/provider?status=pending", nil)
	r = r.WithContext(middleware.WithUser(r.Context(), middleware.User{ID: 7, Type: domain.UserTypeProvider}))
	w := httptest.NewRecorder()

	h.Handle(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"bookings":[]}`, w.Body.String())
	assert.Equal(t, int64(7), svc.got.ProviderID)
}
