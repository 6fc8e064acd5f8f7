package generator

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogem/linkedin-agent/models"
)

func messageResponse(text string) map[string]any {
	return map[string]any{
		"id":          "msg_01",
		"type":        "message",
		"role":        "assistant",
		"model":       defaultModel,
		"stop_reason": "end_turn",
		"content": []map[string]any{
			{"type": "text", "text": text},
		},
		"usage": map[string]any{"input_tokens": 10, "output_tokens": 20},
	}
}

func newTestGenerator(t *testing.T, srv *httptest.Server, timeout time.Duration) *AnthropicGenerator {
	t.Helper()
	g, err := NewAnthropicGenerator(Config{
		APIKey:     "sk-test",
		BaseURL:    srv.URL + "/",
		HTTPClient: srv.Client(),
		Timeout:    timeout,
	})
	require.NoError(t, err)
	return g
}

func TestNewAnthropicGenerator(t *testing.T) {
	t.Parallel()

	_, err := NewAnthropicGenerator(Config{})
	require.ErrorContains(t, err, "API key")

	g, err := NewAnthropicGenerator(Config{APIKey: "sk-test"})
	require.NoError(t, err)
	assert.Equal(t, defaultModel, g.model)
	assert.EqualValues(t, defaultMaxTokens, g.maxTokens)
}

func TestAnthropicGenerator_Generate(t *testing.T) {
	t.Parallel()

	t.Run("returns text with persona as system prompt", func(t *testing.T) {
		t.Parallel()

		var body map[string]any
		var path, apiKey string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path = r.URL.Path
			apiKey = r.Header.Get("X-Api-Key")
			_ = json.NewDecoder(r.Body).Decode(&body)
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(messageResponse("  We launched! #startup  "))
		}))
		t.Cleanup(srv.Close)

		g := newTestGenerator(t, srv, time.Second)
		text, err := g.Generate(context.Background(), "announce our launch", "You write for Ada.")
		require.NoError(t, err)

		assert.Equal(t, "We launched! #startup", text)
		assert.Equal(t, "/v1/messages", path)
		assert.Equal(t, "sk-test", apiKey)
		system, err := json.Marshal(body["system"])
		require.NoError(t, err)
		assert.Contains(t, string(system), `"text":"You write for Ada."`)
		assert.Contains(t, string(system), `"type":"text"`)
	})

	t.Run("api error is not retried", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"type":"error","error":{"type":"api_error","message":"boom"}}`))
		}))
		t.Cleanup(srv.Close)

		g := newTestGenerator(t, srv, time.Second)
		_, err := g.Generate(context.Background(), "p", "persona")
		require.ErrorIs(t, err, models.ErrGeneration)

		var upstream *models.UpstreamError
		require.True(t, errors.As(err, &upstream))
		assert.Equal(t, http.StatusInternalServerError, upstream.Status)
		assert.EqualValues(t, 1, calls.Load())
	})

	t.Run("empty content", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(messageResponse("   "))
		}))
		t.Cleanup(srv.Close)

		g := newTestGenerator(t, srv, time.Second)
		_, err := g.Generate(context.Background(), "p", "persona")
		require.ErrorIs(t, err, models.ErrGeneration)
	})

	t.Run("timeout", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-release:
			}
		}))
		t.Cleanup(func() {
			close(release)
			srv.Close()
		})

		g := newTestGenerator(t, srv, 50*time.Millisecond)
		_, err := g.Generate(context.Background(), "p", "persona")
		require.ErrorIs(t, err, models.ErrGeneration)
		require.ErrorIs(t, err, models.ErrTimeout)
	})
}
