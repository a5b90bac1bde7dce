// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"encoding/json"
	"log/slog"

	domainerrors "autosphere/internal/domain/errors"
	"autosphere/internal/domain/repository"

	"github.com/pkg/errors"
)

// loadOrSeed reads the JSON value stored under key. An absent key is seeded
// with fallback; a malformed value is replaced by fallback. Backend read
// failures fall back without writing. It never fails.
func loadOrSeed[T any](ctx context.Context, kv repository.KVStore, logger *slog.Logger, key string, fallback func() T) T {
	raw, found, err := kv.Get(ctx, key)
	if err != nil {
		logger.Error("Failed to read stored state, using defaults",
			slog.String("key", key),
			slog.Any("error", err),
		)

		return fallback()
	}

	if found {
		var value T
		err := json.Unmarshal(raw, &value)
		if err == nil {
			return value
		}
		logger.Warn("Stored state is malformed, restoring defaults",
			slog.String("key", key),
			slog.String("code", domainerrors.ErrMalformedState.ErrorCode()),
			slog.Any("error", err),
		)
	}

	value := fallback()
	if err := persist(ctx, kv, key, value); err != nil {
		logger.Error("Failed to seed stored state", slog.String("key", key), slog.Any("error", err))
	}

	return value
}

// loadOptional reads the JSON value stored under key without seeding.
// ok is false when the key is absent, unreadable, or malformed.
func loadOptional[T any](ctx context.Context, kv repository.KVStore, logger *slog.Logger, key string) (value T, ok bool) {
	raw, found, err := kv.Get(ctx, key)
	if err != nil {
		logger.Error("Failed to read stored state", slog.String("key", key), slog.Any("error", err))

		return value, false
	}
	if !found {
		return value, false
	}

	if err := json.Unmarshal(raw, &value); err != nil {
		logger.Warn("Stored state is malformed, ignoring it",
			slog.String("key", key),
			slog.String("code", domainerrors.ErrMalformedState.ErrorCode()),
			slog.Any("error", err),
		)

		var zero T

		return zero, false
	}

	return value, true
}

// persist marshals value and writes it under key.
func persist(ctx context.Context, kv repository.KVStore, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "marshal %s", key)
	}

	if err := kv.Set(ctx, key, raw); err != nil {
		return domainerrors.NewStorageError(err, key)
	}

	return nil
}
