package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/rs/cors"

	"github.com/wicaksn/otpgate/internal/pkg/config"
	"github.com/wicaksn/otpgate/internal/pkg/router"
)

const shutdownGrace = 10 * time.Second

// serve runs the HTTP server until the context is canceled, then drains
// in-flight requests.
func serve(ctx context.Context, cfg config.Config, rt *router.Router) error {
	mux := newMux(rt)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: strings.Split(cfg.GetString("server.corsOrigins"), ","),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Correlation-Id"},
	}).Handler(mux)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.GetInt("server.port")),
		Handler:           corsHandler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.GetDuration("server.readTimeout"),
		WriteTimeout:      cfg.GetDuration("server.writeTimeout"),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.InfoContext(ctx, "http server listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// newMux mounts the welcome and health routes ahead of the API router.
func newMux(rt http.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", welcomeHandler)
	mux.HandleFunc("GET /health", healthHandler)
	mux.Handle("/", rt)

	return mux
}

func welcomeHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{"message": "Welcome to the otpgate API"}); err != nil {
		slog.Error("encode welcome response", "error", err)
	}
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
		slog.Error("encode health response", "error", err)
	}
}
