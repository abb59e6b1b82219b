package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/wicaksn/otpgate/internal/auth/entity"
	"github.com/wicaksn/otpgate/internal/pkg/goerror"
)

// RegisterInput is the payload for account creation.
type RegisterInput struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Mobile   string `json:"mobile"   validate:"required,mobile"`
	Password string `json:"password" validate:"required"`
}

// RegisterOutput carries the created account.
type RegisterOutput struct {
	User SanitizedUser
}

// Register validates the payload, enforces email and mobile uniqueness,
// hashes the password and persists the account.
//
// The uniqueness precheck exists to report which field collided. The unique
// indexes remain the source of truth: a concurrent insert between check and
// write still surfaces as a conflict, not a server error.
func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*RegisterOutput, error) {
	ctx, span := startSpan(ctx, "auth.Register")
	defer span.End()

	if err := u.validator.Validate(in); err != nil {
		return nil, err
	}

	fields := map[string]string{}
	if existing, err := u.db.GetUserByEmail(ctx, in.Email); err != nil && !errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewServer(err)
	} else if existing != nil {
		fields["email"] = "This email is already registered."
	}

	if existing, err := u.db.GetUserByMobile(ctx, in.Mobile); err != nil && !errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewServer(err)
	} else if existing != nil {
		fields["mobile"] = "This mobile number is already registered."
	}

	if len(fields) > 0 {
		return nil, goerror.NewBusinessFields("User already exists", goerror.CodeConflict, fields)
	}

	hashed, err := u.hash.Hash(in.Password)
	if err != nil {
		return nil, goerror.NewServer(err)
	}

	user := entity.User{
		ID:        u.numID.Generate(),
		Name:      in.Name,
		Email:     in.Email,
		Mobile:    in.Mobile,
		Password:  hashed,
		CreatedAt: u.clock.Now(),
	}

	if err := u.db.CreateUser(ctx, user); err != nil {
		if errors.Is(err, goerror.ErrConflict) {
			// Lost the race with a concurrent registration on the same
			// email or mobile.
			return nil, goerror.NewBusinessFields("User already exists", goerror.CodeConflict, map[string]string{
				"account": "This email or mobile number is already registered.",
			})
		}

		slog.ErrorContext(ctx, "persist user failed", "error", err)

		return nil, goerror.NewFailedProcess(err, "An error occurred during registration. Please try again later.")
	}

	return &RegisterOutput{User: sanitize(&user)}, nil
}
