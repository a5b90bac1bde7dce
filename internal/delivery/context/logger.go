package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// GetLoggerOrDefault extracts the request-scoped logger from context.Context.
// If not found, returns the provided fallback logger.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// EnrichLogger attaches attrs to the request's logger so every service log line
// of the request carries them. The route guards add the signed-in principal and role.
func EnrichLogger(c echo.Context, fallback *slog.Logger, attrs ...any) {
	req := c.Request()
	logger := GetLoggerOrDefault(req.Context(), fallback).With(attrs...)
	c.SetRequest(req.WithContext(WithLogger(req.Context(), logger)))
}
