// Package auth bundles registration, login and mobile OTP verification.
package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wicaksn/otpgate/internal/auth/inbound"
	"github.com/wicaksn/otpgate/internal/auth/outbound/db"
	"github.com/wicaksn/otpgate/internal/auth/outbound/mq"
	"github.com/wicaksn/otpgate/internal/auth/usecase"
	"github.com/wicaksn/otpgate/internal/pkg/clock"
	"github.com/wicaksn/otpgate/internal/pkg/goroutine"
	"github.com/wicaksn/otpgate/internal/pkg/hash"
	"github.com/wicaksn/otpgate/internal/pkg/jwt"
	"github.com/wicaksn/otpgate/internal/pkg/messaging"
	"github.com/wicaksn/otpgate/internal/pkg/otp"
	"github.com/wicaksn/otpgate/internal/pkg/router"
	"github.com/wicaksn/otpgate/internal/pkg/uid"
	"github.com/wicaksn/otpgate/internal/pkg/validator"
)

// otpPurgeInterval is how often expired codes are swept.
const otpPurgeInterval = 15 * time.Minute

// Dependency carries the shared infrastructure the module builds on.
type Dependency struct {
	Router    *router.Router
	Pool      *pgxpool.Pool
	Messaging messaging.Client
	Validator validator.Validator
	Hash      hash.Hash
	JWT       jwt.JWT
	NumberID  uid.NumberID
	Clock     clock.Clocker
}

// New wires the auth module: persistence, event publishing, use cases, HTTP
// endpoints and the expired-code sweeper.
func New(ctx context.Context, dep Dependency) error {
	uc := usecase.New(usecase.Dependency{
		DB:        db.New(dep.Pool),
		Publisher: mq.New(dep.Messaging),
		Validator: dep.Validator,
		Hash:      dep.Hash,
		JWT:       dep.JWT,
		NumberID:  dep.NumberID,
		OTP:       otp.NewNumeric(),
		Clock:     dep.Clock,
	})

	inbound.RegisterRoutes(dep.Router, uc)

	goroutine.Go(ctx, func(ctx context.Context) {
		ticker := time.NewTicker(otpPurgeInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				removed, err := uc.PurgeExpiredOtps(ctx)
				if err != nil {
					slog.ErrorContext(ctx, "purge expired otps failed", "error", err)
					continue
				}
				if removed > 0 {
					slog.InfoContext(ctx, "purged expired otps", "count", removed)
				}
			}
		}
	})

	return nil
}
