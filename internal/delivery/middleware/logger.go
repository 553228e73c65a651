package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"launchpad/config"

	"github.com/labstack/echo/v4"
	slogecho "github.com/samber/slog-echo"
)

// LoggerMiddleware writes one access log line per request through slog-echo.
type LoggerMiddleware struct {
	handler echo.MiddlewareFunc
}

// NewLoggerMiddleware creates a new logger middleware. Debug mode adds request
// and response bodies to every line.
func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config) *LoggerMiddleware {
	debug := cfg.Env.Debug

	return &LoggerMiddleware{
		handler: slogecho.NewWithConfig(logger, slogecho.Config{
			DefaultLevel:     slog.LevelInfo,
			ClientErrorLevel: slog.LevelWarn,
			ServerErrorLevel: slog.LevelError,
			WithUserAgent:    true,
			WithRequestID:    true,
			WithRequestBody:  debug,
			WithResponseBody: debug,
			Filters: []slogecho.Filter{
				skipHealthCheck,
			},
		}),
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return m.handler(next)
}

// skipHealthCheck drops successful probes from the access log.
func skipHealthCheck(c echo.Context) bool {
	return !(strings.HasPrefix(c.Request().URL.Path, "/health") && c.Response().Status == http.StatusOK)
}
