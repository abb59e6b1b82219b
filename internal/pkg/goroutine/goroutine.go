// Package goroutine runs background work with panic containment.
package goroutine

import (
	"context"
	"log/slog"

	"github.com/wicaksn/otpgate/internal/pkg/stacktrace"
)

// Go runs fn on a new goroutine, logging any panic instead of crashing the
// process.
func Go(ctx context.Context, fn func(ctx context.Context)) {
	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				slog.ErrorContext(ctx, "panic in background goroutine",
					"panic", rec,
					"stack", stacktrace.Capture(2),
				)
			}
		}()

		fn(ctx)
	}()
}
