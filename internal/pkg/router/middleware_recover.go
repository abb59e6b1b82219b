package router

import (
	"log/slog"
	"net/http"

	"github.com/wicaksn/otpgate/internal/pkg/stacktrace"
)

// recoverMiddleware converts a handler panic into a 500 response so a single
// bad request cannot take the process down.
func recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.ErrorContext(r.Context(), "panic while serving request",
					"panic", rec,
					"method", r.Method,
					"path", r.URL.Path,
					"stack", stacktrace.Capture(3),
				)
				writeError(w, http.StatusInternalServerError, "Internal server error", nil)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
