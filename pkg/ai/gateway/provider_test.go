package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"agri-solve-be/pkg/ai"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *GatewayProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewGatewayProvider(srv.URL, "test-key", "test-model")
}

func TestAnalyzeSuccess(t *testing.T) {
	var captured chatRequest

	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"{\"diagnosis\":\"Leaf Blast\"}"}}]}`))
	})

	content, err := provider.Analyze(context.Background(), "data:image/jpeg;base64,abc", "rice")

	require.NoError(t, err)
	assert.Equal(t, `{"diagnosis":"Leaf Blast"}`, content)

	assert.Equal(t, "test-model", captured.Model)
	assert.Equal(t, 0.3, captured.Temperature)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "user", captured.Messages[1].Role)
}

func TestAnalyzeCropHintInInstruction(t *testing.T) {
	var captured chatRequest

	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	})

	_, err := provider.Analyze(context.Background(), "data:image/jpeg;base64,abc", "tomato")
	require.NoError(t, err)

	parts, ok := captured.Messages[1].Content.([]interface{})
	require.True(t, ok)
	text, ok := parts[0].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, text["text"], "tomato")
}

func TestAnalyzeOptionsOverride(t *testing.T) {
	var captured chatRequest

	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	})

	_, err := provider.Analyze(context.Background(), "data:image/jpeg;base64,abc", "",
		ai.WithTemperature(0.7), ai.WithModel("other-model"))
	require.NoError(t, err)

	assert.Equal(t, 0.7, captured.Temperature)
	assert.Equal(t, "other-model", captured.Model)
}

func TestAnalyzeErrorStatuses(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "rate limited", status: http.StatusTooManyRequests, wantErr: ai.ErrRateLimited},
		{name: "credits exhausted", status: http.StatusPaymentRequired, wantErr: ai.ErrQuotaExhausted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})

			_, err := provider.Analyze(context.Background(), "data:image/jpeg;base64,abc", "rice")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAnalyzeServerError(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	})

	_, err := provider.Analyze(context.Background(), "data:image/jpeg;base64,abc", "rice")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ai.ErrRateLimited)
	assert.NotErrorIs(t, err, ai.ErrQuotaExhausted)
	assert.Contains(t, err.Error(), "status 500")
}

func TestAnalyzeEmptyChoices(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "no choices", body: `{"choices":[]}`},
		{name: "empty content", body: `{"choices":[{"message":{"content":""}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})

			_, err := provider.Analyze(context.Background(), "data:image/jpeg;base64,abc", "rice")
			assert.ErrorIs(t, err, ai.ErrEmptyResponse)
		})
	}
}
