package main

import (
	"embed"
	"log/slog"
	"os"

	"github.com/wicaksn/otpgate/internal/app"
)

// version is stamped at build time with -ldflags "-X main.version=...".
var version = "dev"

//go:embed migrations/*.sql
var migrations embed.FS

func main() {
	if err := app.Run(version, migrations); err != nil {
		slog.Error("service exited", "error", err)
		os.Exit(1)
	}
}
