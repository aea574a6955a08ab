package update_booking_status

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/booking-platform/internal/api/middleware"
	"github.com/m04kA/booking-platform/internal/domain"
	"github.com/m04kA/booking-platform/internal/service/bookings"
	"github.com/m04kA/booking-platform/internal/service/bookings/models"
	"github.com/m04kA/booking-platform/pkg/logger"
)

type stubService struct {
	err error
}

func (s *stubService) UpdateStatus(_ context.Context, bookingID, _ int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.BookingResponse{ID: bookingID, Status: req.Status}, nil
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		vars       map[string]string
		body       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "ok", body: `{"status":"confirmed"}`, wantStatus: http.StatusOK},
		{name: "bad id", vars: map[string]string{"bookingId": "x"}, body: `{"status":"confirmed"}`, wantStatus: http.StatusBadRequest},
		{name: "missing status", body: `{}`, wantStatus: http.StatusBadRequest, wantBody: `{"error":"status is required"}`},
		{name: "unknown status", body: `{"status":"lost"}`, err: bookings.ErrInvalidStatus, wantStatus: http.StatusBadRequest, wantBody: `{"error":"Invalid booking status"}`},
		{
			name:       "transition",
			body:       `{"status":"pending"}`,
			err:        fmt.Errorf("%w: completed -> pending", bookings.ErrInvalidTransition),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"booking status transition is not allowed: completed -> pending"}`,
		},
		{name: "foreign booking", body: `{"status":"confirmed"}`, err: bookings.ErrBookingNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vars := tt.vars
			if vars == nil {
				vars = map[string]string{"bookingId": "5"}
			}
			r := httptest.NewRequest(http.MethodPut, "/api/v1/bookings/5/status", strings.NewReader(tt.body))
			r = mux.SetURLVars(r, vars)
			r = r.WithContext(middleware.WithUser(r.Context(), middleware.User{ID: 7, Type: domain.UserTypeProvider}))
			w := httptest.NewRecorder()

			NewHandler(&stubService{err: tt.err}, logger.NewNop()).Handle(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			}
		})
	}
}
