package service

import "context"

// IDAllocator hands out listing ids that are never reused.
type IDAllocator interface {
	// NextID returns an id strictly greater than both floor and every id it returned before.
	NextID(ctx context.Context, floor int64) (int64, error)
}
