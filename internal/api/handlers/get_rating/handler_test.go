package get_rating

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/booking-platform/internal/domain"
	"github.com/m04kA/booking-platform/internal/service/reviews/models"
	"github.com/m04kA/booking-platform/pkg/logger"
	"github.com/m04kA/booking-platform/pkg/ptr"
)

type stubService struct {
	summary domain.RatingSummary
	err     error
}

func (s *stubService) ProviderRating(context.Context, int64) (*models.RatingResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return models.FromRatingSummary(s.summary), nil
}

func (s *stubService) ServiceRating(ctx context.Context, id int64) (*models.RatingResponse, error) {
	return s.ProviderRating(ctx, id)
}

func TestHandleProvider(t *testing.T) {
	tests := []struct {
		name       string
		svc        *stubService
		wantStatus int
		wantBody   string
	}{
		{name: "no reviews", svc: &stubService{}, wantStatus: http.StatusOK, wantBody: `{"average_rating":null,"review_count":0}`},
		{name: "rounded", svc: &stubService{summary: domain.RatingSummary{Average: ptr.Ptr(4.25), Count: 4}},
			wantStatus: http.StatusOK, wantBody: `{"average_rating":4.3,"review_count":4}`},
		{name: "failure", svc: &stubService{err: errors.New("db down")}, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/v1/reviews/provider/3/rating", nil),
				map[string]string{"providerId": "3"})
			w := httptest.NewRecorder()

			NewHandler(tt.svc, logger.NewNop()).HandleProvider(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestHandleService_BadID(t *testing.T) {
	r := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/v1/reviews/service/x/rating", nil),
		map[string]string{"serviceId": "x"})
	w := httptest.NewRecorder()

	NewHandler(&stubService{}, logger.NewNop()).HandleService(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
