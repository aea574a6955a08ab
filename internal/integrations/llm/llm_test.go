package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIClient_Complete(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  We open at 9.  "}}]}`))
	}))
	defer srv.Close()

	c, err := NewOpenAIClient(srv.URL+"/", "sk-test", "", time.Second)
	require.NoError(t, err)

	reply, err := c.Complete(context.Background(), "be helpful", []Message{
		{Role: RoleUser, Content: "hi"},
		{Role: RoleAssistant, Content: "hello"},
		{Role: RoleUser, Content: "when do you open?"},
	})

	require.NoError(t, err)
	assert.Equal(t, "We open at 9.", reply)
	assert.Equal(t, defaultOpenAIModel, got.Model)
	require.Len(t, got.Messages, 4)
	assert.Equal(t, chatMessage{Role: "system", Content: "be helpful"}, got.Messages[0])
	assert.Equal(t, "assistant", got.Messages[2].Role)
}

func TestOpenAIClient_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{}`, wantErr: ErrNotConfigured},
		{name: "rate limited", status: http.StatusTooManyRequests, body: `{}`, wantErr: ErrRateLimited},
		{name: "server error", status: http.StatusInternalServerError, body: `{"error":{"message":"boom"}}`, wantErr: ErrInvalidResponse},
		{name: "no choices", status: http.StatusOK, body: `{"choices":[]}`, wantErr: ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c, err := NewOpenAIClient(srv.URL, "sk-test", "gpt-4o-mini", time.Second)
			require.NoError(t, err)

			_, err = c.Complete(context.Background(), "sys", []Message{{Role: RoleUser, Content: "hi"}})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewClients_RequireKey(t *testing.T) {
	_, err := NewOpenAIClient("", "", "", time.Second)
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = NewGeminiClient(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestToGeminiHistory(t *testing.T) {
	history := toGeminiHistory([]Message{
		{Role: RoleUser, Content: "hi"},
		{Role: RoleAssistant, Content: "hello"},
	})

	require.Len(t, history, 2)
	assert.Equal(t, "user", history[0].Role)
	assert.Equal(t, "model", history[1].Role)
	assert.Equal(t, genai.Text("hello"), history[1].Parts[0])
}

func TestTextOf(t *testing.T) {
	resp := &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
		Content: &genai.Content{Parts: []genai.Part{genai.Text("a "), genai.Text("b ")}},
	}}}

	assert.Equal(t, "a b", textOf(resp))
	assert.Equal(t, "", textOf(&genai.GenerateContentResponse{}))
	assert.Equal(t, "", textOf(nil))
}
