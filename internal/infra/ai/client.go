package ai

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"sync/atomic"
	"time"

	"launchpad/config"
	"launchpad/internal/util"

	"github.com/ollama/ollama/api"
	"github.com/pkg/errors"
)

// ErrCircuitOpen is returned while the breaker short-circuits calls.
var ErrCircuitOpen = errors.New("ollama circuit open")

const (
	defaultTimeout          = 60 * time.Second
	defaultBackoff          = 500 * time.Millisecond
	defaultFailureThreshold = 5
	defaultCircuitReset     = 30 * time.Second
)

// Client wraps the Ollama API client and adds retries, timeout and a circuit breaker.
type Client struct {
	api    *api.Client
	http   *http.Client
	cfg    config.AIConfig
	logger *slog.Logger

	failures  atomic.Int32
	openUntil atomic.Int64 // unix nano
	closed    atomic.Bool
	now       func() time.Time
}

// NewClient creates a new Ollama client wrapper. A nil httpClient gets one
// with the configured timeout.
func NewClient(cfg config.AIConfig, httpClient *http.Client, logger *slog.Logger) (*Client, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.Backoff <= 0 {
		cfg.Backoff = defaultBackoff
	}
	if cfg.CircuitFailureThreshold <= 0 {
		cfg.CircuitFailureThreshold = defaultFailureThreshold
	}
	if cfg.CircuitReset <= 0 {
		cfg.CircuitReset = defaultCircuitReset
	}
	if cfg.Retries < 0 {
		cfg.Retries = 0
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	u, err := url.ParseRequestURI(cfg.BaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid ollama base url")
	}

	logger.Info("Ollama client created",
		slog.String("base_url", cfg.BaseURL),
		slog.String("model", cfg.Model),
		slog.Duration("timeout", cfg.Timeout),
	)

	return &Client{
		api:    api.NewClient(u, httpClient),
		http:   httpClient,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}, nil
}

func (c *Client) isCircuitOpen() bool {
	if c.failures.Load() < int32(c.cfg.CircuitFailureThreshold) {
		return false
	}

	if c.now().UnixNano() < c.openUntil.Load() {
		return true
	}

	// half-open: let the next request through
	c.failures.Store(0)

	return false
}

func (c *Client) recordFailure() {
	if c.failures.Add(1) >= int32(c.cfg.CircuitFailureThreshold) {
		c.openUntil.Store(c.now().Add(c.cfg.CircuitReset).UnixNano())
	}
}

// Generate sends a prompt that must be answered with a JSON object and
// returns the raw model text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.closed.Load() {
		return "", errors.New("ollama client closed")
	}
	if c.isCircuitOpen() {
		return "", ErrCircuitOpen
	}

	stream := false
	var lastErr error
	for attempt := 0; attempt <= c.cfg.Retries; attempt++ {
		ctxReq, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
		req := &api.GenerateRequest{
			Model:  c.cfg.Model,
			Prompt: prompt,
			Stream: &stream,
			Format: []byte(`"json"`),
		}

		var out string
		start := c.now()
		err := c.api.Generate(ctxReq, req, func(r api.GenerateResponse) error {
			out += r.Response

			return nil
		})
		cancel()

		if err == nil {
			c.failures.Store(0)
			c.logger.DebugContext(ctx, "Ollama generate completed",
				slog.String("model", c.cfg.Model),
				slog.String("latency", util.FormatDuration(time.Since(start))),
				slog.Int("attempt", attempt+1),
			)

			return out, nil
		}

		lastErr = err
		c.recordFailure()
		c.logger.WarnContext(ctx, "Ollama generate failed",
			slog.Int("attempt", attempt+1),
			slog.Any("error", err),
		)

		if c.isCircuitOpen() {
			return "", ErrCircuitOpen
		}
		if attempt == c.cfg.Retries {
			break
		}

		select {
		case <-ctx.Done():
			return "", errors.WithStack(ctx.Err())
		case <-time.After(c.cfg.Backoff * time.Duration(attempt+1)):
		}
	}

	return "", errors.Wrap(lastErr, "generate failed after retries")
}

// Close releases idle connections. Close is idempotent.
func (c *Client) Close() error {
	if c == nil || !c.closed.CompareAndSwap(false, true) {
		return nil
	}

	if tr, ok := c.http.Transport.(interface{ CloseIdleConnections() }); ok {
		tr.CloseIdleConnections()
	}

	return nil
}
