package unblock_date

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/booking-platform/internal/api/middleware"
	"github.com/m04kA/booking-platform/internal/domain"
	"github.com/m04kA/booking-platform/internal/service/availability"
	"github.com/m04kA/booking-platform/pkg/logger"
)

type stubService struct {
	err error
}

func (s *stubService) UnblockDate(context.Context, int64, int64) error { return s.err }

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		withUser   bool
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "ok", id: "3", withUser: true, wantStatus: http.StatusOK, wantBody: `{"message":"Date unblocked successfully"}`},
		{name: "foreign block", id: "3", withUser: true, err: availability.ErrBlockedDateNotFound,
			wantStatus: http.StatusNotFound, wantBody: `{"error":"Blocked date not found or unauthorized"}`},
		{name: "bad id", id: "x", withUser: true, wantStatus: http.StatusBadRequest},
		{name: "no user", id: "3", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodDelete, "/api/v1/availability/blocked/"+tt.id, nil)
			r = mux.SetURLVars(r, map[string]string{"id": tt.id})
			if tt.withUser {
				r = r.WithContext(middleware.WithUser(r.Context(), middleware.User{ID: 7, Type: domain.UserTypeProvider}))
			}
			w := httptest.NewRecorder()

			NewHandler(&stubService{err: tt.err}, logger.NewNop()).Handle(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			}
		})
	}
}
