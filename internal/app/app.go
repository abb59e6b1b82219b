// Package app boots the service: configuration, telemetry, infrastructure,
// module wiring and the HTTP server lifecycle.
package app

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/wicaksn/otpgate/internal/pkg/config"
	"github.com/wicaksn/otpgate/internal/pkg/instrument"
)

const serviceName = "otpgate"

// Run starts the service and blocks until shutdown completes. The migrations
// filesystem is applied to the database before any module is wired.
func Run(version string, migrations fs.FS) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := config.NewViper(configPath)
	if err != nil {
		return err
	}

	inst, err := instrument.New(ctx, instrument.Options{
		ServiceName:    serviceName,
		ServiceVersion: version,
		Endpoint:       cfg.GetString("telemetry.endpoint"),
		Enabled:        cfg.GetBool("telemetry.enabled"),
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := inst.Shutdown(context.Background()); err != nil {
			slog.Error("telemetry shutdown failed", "error", err)
		}
	}()

	inst.SetupLogging(serviceName, cfg.GetBool("server.debug"), cfg.GetString("instrument.log_mask_fields"))

	infra, err := initiate(ctx, cfg, migrations)
	if err != nil {
		return err
	}
	defer infra.close()

	rt, err := registerModules(ctx, cfg, infra)
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "service starting", "version", version)

	return serve(ctx, cfg, rt)
}
