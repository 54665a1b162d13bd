package common

import (
	"context"
	"time"
)

const DEFAULT_REQUEST_TIMEOUT = 15 * time.Second

// WithTimeout derives a child context bounded by duration. A non-positive
// duration only adds cancellation.
func WithTimeout(ctx context.Context, duration time.Duration) (context.Context, context.CancelFunc) {
	if duration <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, duration)
}
