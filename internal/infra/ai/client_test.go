package ai

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"launchpad/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeGenerate(w http.ResponseWriter, text string) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"model": "m", "response": text, "done": true})
}

func newTestClient(t *testing.T, srv *httptest.Server, cfg config.AIConfig) *Client {
	t.Helper()
	cfg.BaseURL = srv.URL
	cfg.Model = "m"
	client, err := NewClient(cfg, srv.Client(), discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestClient_Generate_SendsJSONFormat(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeGenerate(w, `{"ok":true}`)
	}))
	defer srv.Close()

	client := newTestClient(t, srv, config.AIConfig{Timeout: time.Second})
	out, err := client.Generate(context.Background(), "hello")
	require.NoError(t, err)

	assert.Equal(t, `{"ok":true}`, out)
	assert.Equal(t, "m", got["model"])
	assert.Equal(t, "hello", got["prompt"])
	assert.Equal(t, "json", got["format"])
	assert.Equal(t, false, got["stream"])
}

func TestClient_Generate_RetriesThenSucceeds(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if attempts.Add(1) == 1 {
			http.Error(w, "temporary", http.StatusInternalServerError)
			return
		}
		writeGenerate(w, "{}")
	}))
	defer srv.Close()

	client := newTestClient(t, srv, config.AIConfig{
		Timeout:                 time.Second,
		Retries:                 2,
		Backoff:                 5 * time.Millisecond,
		CircuitFailureThreshold: 10,
	})

	_, err := client.Generate(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, int32(2), attempts.Load())
	assert.Equal(t, int32(0), client.failures.Load())
}

func TestClient_CircuitBreaker_Opens(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts.Add(1)
		http.Error(w, "permanent", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := newTestClient(t, srv, config.AIConfig{
		Timeout:                 time.Second,
		Backoff:                 time.Millisecond,
		CircuitFailureThreshold: 2,
		CircuitReset:            time.Minute,
	})

	ctx := context.Background()
	_, err := client.Generate(ctx, "p")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCircuitOpen)

	// second failure trips the breaker
	_, err = client.Generate(ctx, "p")
	assert.ErrorIs(t, err, ErrCircuitOpen)

	_, err = client.Generate(ctx, "p")
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, int32(2), attempts.Load())
}

func TestClient_CircuitBreaker_HalfOpenAfterReset(t *testing.T) {
	var healthy atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if !healthy.Load() {
			http.Error(w, "down", http.StatusServiceUnavailable)
			return
		}
		writeGenerate(w, "{}")
	}))
	defer srv.Close()

	client := newTestClient(t, srv, config.AIConfig{
		Timeout:                 time.Second,
		CircuitFailureThreshold: 1,
		CircuitReset:            time.Minute,
	})
	now := time.Now()
	client.now = func() time.Time { return now }

	_, err := client.Generate(context.Background(), "p")
	assert.ErrorIs(t, err, ErrCircuitOpen)

	healthy.Store(true)
	now = now.Add(2 * time.Minute)

	_, err = client.Generate(context.Background(), "p")
	assert.NoError(t, err)
}

func TestNewClient_InvalidBaseURL(t *testing.T) {
	_, err := NewClient(config.AIConfig{BaseURL: "not a url"}, nil, discardLogger())
	assert.Error(t, err)
}

func TestClient_Close_Idempotent(t *testing.T) {
	client, err := NewClient(config.AIConfig{BaseURL: "http://localhost:11434"}, nil, discardLogger())
	require.NoError(t, err)

	assert.NoError(t, client.Close())
	assert.NoError(t, client.Close())

	_, err = client.Generate(context.Background(), "p")
	assert.Error(t, err)
}
