package usecase

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/wicaksn/otpgate/internal/pkg/clock"
)

// smsSender delivers rendered notifications.
type smsSender interface {
	SendOtp(ctx context.Context, mobile, name, code string, validFor time.Duration) error
}

// dedup filters redelivered messages.
type dedup interface {
	FirstSeen(ctx context.Context, key string) (bool, error)
}

// Dependency carries the consumer's collaborators.
type Dependency struct {
	SMS   smsSender
	Dedup dedup
	Clock clock.Clocker
}

// Usecase handles notification delivery triggered by domain events.
type Usecase struct {
	sms   smsSender
	dedup dedup
	clock clock.Clocker
}

// New wires the use cases.
func New(dep Dependency) *Usecase {
	return &Usecase{sms: dep.SMS, dedup: dep.Dedup, clock: dep.Clock}
}

func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return otel.Tracer("github.com/wicaksn/otpgate/internal/notification/usecase").Start(ctx, name)
}
