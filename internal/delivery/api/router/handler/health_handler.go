package handler

import (
	"log/slog"
	"net/http"

	"autosphere/internal/delivery/api/response"
	"autosphere/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	KV     repository.KVStore
	Logger *slog.Logger
}

// HealthHandler reports whether the storage backend answers.
type HealthHandler struct {
	kv     repository.KVStore
	logger *slog.Logger
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{
		kv:     params.KV,
		logger: params.Logger,
	}
}

// HealthCheck reads a well-known key to prove the KV backend is reachable.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	if _, _, err := h.kv.Get(c.Request().Context(), repository.KeySiteContent); err != nil {
		h.logger.Warn("Health check failed", slog.Any("error", err))

		return response.Error(c, http.StatusServiceUnavailable, "STORAGE_UNAVAILABLE", "Storage backend is unavailable", nil)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
