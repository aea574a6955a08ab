package ai_chat

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/booking-platform/internal/usecase/ai_chat"
	"github.com/m04kA/booking-platform/pkg/logger"
)

type stubUseCase struct {
	got *ai_chat.Request
	err error
}

func (s *stubUseCase) Execute(_ context.Context, req *ai_chat.Request) (*ai_chat.Response, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &ai_chat.Response{Reply: "We open at 9."}, nil
}

func doRequest(uc ChatUseCase, providerID, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/public/providers/"+providerID+"/chat", strings.NewReader(body))
	r = mux.SetURLVars(r, map[string]string{"providerId": providerID})
	w := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(w, r)
	return w
}

func TestHandle(t *testing.T) {
	uc := &stubUseCase{}

	w := doRequest(uc, "7", `{"message":"When do you open?","history":[{"role":"user","content":"hi"}]}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"reply":"We open at 9."}`, w.Body.String())
	require.NotNil(t, uc.got)
	assert.Equal(t, int64(7), uc.got.ProviderID)
	assert.Len(t, uc.got.History, 1)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "assistant unavailable",
			err:        fmt.Errorf("%w: rate limited", ai_chat.ErrAssistantUnavailable),
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"error":"AI service is not available"}`,
		},
		{
			name:       "provider not found",
			err:        ai_chat.ErrProviderNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"Provider not found"}`,
		},
		{
			name:       "invalid message",
			err:        fmt.Errorf("%w: message is required", ai_chat.ErrInvalidInput),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"message is required"}`,
		},
		{
			name:       "backend failure",
			err:        fmt.Errorf("%w: completion: boom", ai_chat.ErrInternal),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(&stubUseCase{err: tt.err}, "7", `{"message":"hi"}`)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestHandle_ProviderIDFromPathOnly(t *testing.T) {
	uc := &stubUseCase{}
	w := doRequest(uc, "7", `{"message":"hi","provider_id":99}`)

	// неизвестное поле отклоняется декодером
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, uc.got)
}
