package router

import (
	"net/http"

	"github.com/wicaksn/otpgate/internal/pkg/config"
)

// maintenanceMiddleware short-circuits all traffic with 503 while the
// maintenance flag is on. The flag is read per request so flipping the
// hot-reloaded config file takes effect immediately.
func maintenanceMiddleware(cfg config.Config, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cfg.GetBool("server.maintenance") {
			writeError(w, http.StatusServiceUnavailable, "Service under maintenance", nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}
