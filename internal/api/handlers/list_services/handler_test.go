package list_services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/booking-platform/internal/api/middleware"
	"github.com/m04kA/booking-platform/internal/domain"
	"github.com/m04kA/booking-platform/internal/service/catalog/models"
	"github.com/m04kA/booking-platform/pkg/logger"
)

type stubService struct {
	providerID int64
	activeOnly bool
	err        error
}

func (s *stubService) ListByProvider(_ context.Context, providerID int64, activeOnly bool) ([]models.ServiceResponse, error) {
	s.providerID, s.activeOnly = providerID, activeOnly
	if s.err != nil {
		return nil, s.err
	}
	return []models.ServiceResponse{}, nil
}

func TestHandlePublic_ActiveOnly(t *testing.T) {
	svc := &stubService{}
	r := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/v1/public/providers/7/services", nil),
		map[string]string{"providerId": "7"})
	w := httptest.NewRecorder()

	NewHandler(svc, logger.NewNop()).HandlePublic(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"services":[]}`, w.Body.String())
	assert.Equal(t, int64(7), svc.providerID)
	assert.True(t, svc.activeOnly)
}

func TestHandleOwn_IncludesInactive(t *testing.T) {
	svc := &stubService{}
	r := httptest.NewRequest(http.MethodGet, "/api/v1/services", nil)
	r = r.WithContext(middleware.WithUser(r.Context(), middleware.User{ID: 9, Type: domain.UserTypeProvider}))
	w := httptest.NewRecorder()

	NewHandler(svc, logger.NewNop()).HandleOwn(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(9), svc.providerID)
	assert.False(t, svc.activeOnly)
}

func TestHandlePublic_Errors(t *testing.T) {
	r := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"providerId": "0"})
	w := httptest.NewRecorder()
	NewHandler(&stubService{}, logger.NewNop()).HandlePublic(w, r)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	r = mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"providerId": "7"})
	w = httptest.NewRecorder()
	NewHandler(&stubService{err: errors.New("db down")}, logger.NewNop()).HandlePublic(w, r)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
