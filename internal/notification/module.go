// Package notification delivers user-facing messages triggered by domain
// events.
package notification

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wicaksn/otpgate/internal/notification/inbound"
	outsms "github.com/wicaksn/otpgate/internal/notification/outbound/sms"
	"github.com/wicaksn/otpgate/internal/notification/usecase"
	"github.com/wicaksn/otpgate/internal/pkg/clock"
	"github.com/wicaksn/otpgate/internal/pkg/idempotency"
	"github.com/wicaksn/otpgate/internal/pkg/messaging"
	"github.com/wicaksn/otpgate/internal/pkg/sms"
)

// dedupRetention bounds how long processed issuances are remembered. Longer
// than the OTP validity window, so every redelivery of a live code is caught.
const dedupRetention = 30 * time.Minute

// Dependency carries the shared infrastructure the module builds on.
type Dependency struct {
	Messaging messaging.Client
	Redis     redis.UniversalClient
	SMS       sms.Sender
	Clock     clock.Clocker
}

// New wires the notification module and starts its consumers.
func New(dep Dependency) error {
	uc := usecase.New(usecase.Dependency{
		SMS:   outsms.New(dep.SMS),
		Dedup: idempotency.NewRedis(dep.Redis, "notification", dedupRetention),
		Clock: dep.Clock,
	})

	return inbound.RegisterConsumers(dep.Messaging, uc)
}
