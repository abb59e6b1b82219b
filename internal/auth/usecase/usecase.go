package usecase

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/wicaksn/otpgate/internal/auth/entity"
	"github.com/wicaksn/otpgate/internal/pkg/clock"
	"github.com/wicaksn/otpgate/internal/pkg/hash"
	"github.com/wicaksn/otpgate/internal/pkg/jwt"
	"github.com/wicaksn/otpgate/internal/pkg/otp"
	"github.com/wicaksn/otpgate/internal/pkg/uid"
	"github.com/wicaksn/otpgate/internal/pkg/validator"
	"github.com/wicaksn/otpgate/internal/shared/event"
)

// otpValidity is how long a generated code can be used.
const otpValidity = 5 * time.Minute

// repoDB is the persistence surface the use cases need.
type repoDB interface {
	CreateUser(ctx context.Context, user entity.User) error
	GetUserByID(ctx context.Context, id int64) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetUserByMobile(ctx context.Context, mobile string) (*entity.User, error)
	GetUserByEmailOrMobile(ctx context.Context, identifier string) (*entity.User, error)
	CreateOtp(ctx context.Context, rec entity.OtpRecord) error
	ConsumeOtp(ctx context.Context, userID int64, code string, now time.Time) (bool, error)
	DeleteExpiredOtps(ctx context.Context, now time.Time) (int64, error)
}

// publisher emits domain events for other modules.
type publisher interface {
	PublishOtpIssued(ctx context.Context, msg event.OtpIssuedMessage) error
}

// Dependency carries everything the use cases need.
type Dependency struct {
	DB        repoDB
	Publisher publisher
	Validator validator.Validator
	Hash      hash.Hash
	JWT       jwt.JWT
	NumberID  uid.NumberID
	OTP       otp.Generator
	Clock     clock.Clocker
}

// Usecase implements the auth operations: register, login, send and verify
// OTP, and profile lookup.
type Usecase struct {
	db        repoDB
	pub       publisher
	validator validator.Validator
	hash      hash.Hash
	jwt       jwt.JWT
	numID     uid.NumberID
	otp       otp.Generator
	clock     clock.Clocker
}

// New wires the use cases from their dependencies.
func New(dep Dependency) *Usecase {
	return &Usecase{
		db:        dep.DB,
		pub:       dep.Publisher,
		validator: dep.Validator,
		hash:      dep.Hash,
		jwt:       dep.JWT,
		numID:     dep.NumberID,
		otp:       dep.OTP,
		clock:     dep.Clock,
	}
}

func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return otel.Tracer("github.com/wicaksn/otpgate/internal/auth/usecase").Start(ctx, name)
}

// SanitizedUser is the safe-to-expose view of a user. It never carries the
// password hash.
type SanitizedUser struct {
	ID        int64
	Name      string
	Email     string
	Mobile    string
	CreatedAt time.Time
}

func sanitize(u *entity.User) SanitizedUser {
	return SanitizedUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Mobile:    u.Mobile,
		CreatedAt: u.CreatedAt,
	}
}
