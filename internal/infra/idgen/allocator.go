// Package idgen allocates listing ids from a counter persisted in the KV store.
package idgen

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	domainerrors "autosphere/internal/domain/errors"
	"autosphere/internal/domain/repository"
	"autosphere/internal/domain/service"

	"github.com/pkg/errors"
)

// counterKeys are written with the same value on every allocation.
var counterKeys = []string{repository.KeyCarIDSequence, repository.KeyCarIDHighWater}

type allocator struct {
	mu     sync.Mutex
	kv     repository.KVStore
	logger *slog.Logger

	// last is the highest id handed out by this process.
	last int64
}

// NewAllocator returns an IDAllocator backed by the cars_id_seq counter and its cars_id_hwm mirror.
func NewAllocator(kv repository.KVStore, logger *slog.Logger) service.IDAllocator {
	return &allocator{kv: kv, logger: logger}
}

// NextID returns max(high-water mark, floor)+1 and persists it before returning.
// A malformed counter copy is ignored in favor of the other one; when no copy can be
// read the allocation is refused instead of restarting below the old high-water mark.
func (a *allocator) NextID(ctx context.Context, floor int64) (int64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	current, err := a.highWater(ctx)
	if err != nil {
		return 0, err
	}

	next := max(current, floor, a.last) + 1
	raw := []byte(strconv.FormatInt(next, 10))
	for _, key := range counterKeys {
		if err := a.kv.Set(ctx, key, raw); err != nil {
			return 0, errors.Wrapf(err, "persist %s", key)
		}
	}
	a.last = next

	return next, nil
}

func (a *allocator) highWater(ctx context.Context) (int64, error) {
	var (
		best      int64
		readable  bool
		malformed []string
	)

	for _, key := range counterKeys {
		raw, found, err := a.kv.Get(ctx, key)
		if err != nil {
			return 0, errors.Wrapf(err, "read %s", key)
		}
		if !found {
			continue
		}

		value, err := strconv.ParseInt(strings.TrimSpace(string(raw)), 10, 64)
		if err != nil {
			a.logger.Warn("Stored id counter is malformed, ignoring it",
				slog.String("key", key),
				slog.String("code", domainerrors.ErrMalformedState.ErrorCode()),
				slog.Any("error", err),
			)
			malformed = append(malformed, key)

			continue
		}
		best = max(best, value)
		readable = true
	}

	if !readable && len(malformed) > 0 && a.last == 0 {
		return 0, domainerrors.ErrMalformedState.WithDetails(strings.Join(malformed, ", "))
	}

	return best, nil
}
