package update_faq

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/booking-platform/internal/api/middleware"
	"github.com/m04kA/booking-platform/internal/domain"
	"github.com/m04kA/booking-platform/internal/service/faqs"
	"github.com/m04kA/booking-platform/internal/service/faqs/models"
	"github.com/m04kA/booking-platform/pkg/logger"
)

type stubService struct {
	err error
	id  int64
}

func (s *stubService) Update(_ context.Context, _ int64, id int64, req *models.UpdateFAQRequest) (*models.FAQResponse, error) {
	s.id = id
	if s.err != nil {
		return nil, s.err
	}
	return &models.FAQResponse{ID: id, Answer: *req.Answer}, nil
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		err        error
		wantStatus int
		wantInBody string
	}{
		{name: "updated", id: "4", wantStatus: http.StatusOK, wantInBody: `"answer":"Yes"`},
		{name: "foreign faq", id: "4", err: faqs.ErrFAQNotFound, wantStatus: http.StatusNotFound, wantInBody: "FAQ not found"},
		{name: "bad id", id: "0", wantStatus: http.StatusBadRequest, wantInBody: "Invalid faq id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{err: tt.err}
			r := httptest.NewRequest(http.MethodPut, "/api/v1/faqs/"+tt.id, strings.NewReader(`{"answer":"Yes"}`))
			r = mux.SetURLVars(r, map[string]string{"id": tt.id})
			r = r.WithContext(middleware.WithUser(r.Context(), middleware.User{ID: 7, Type: domain.UserTypeProvider}))
			w := httptest.NewRecorder()

			NewHandler(svc, logger.NewNop()).Handle(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantInBody)
		})
	}
}
