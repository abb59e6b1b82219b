package usecase

import (
	"context"
	"errors"

	"github.com/samber/lo"

	"github.com/wicaksn/otpgate/internal/pkg/goerror"
)

// LoginInput identifies the account by email or mobile number. Exactly one
// identifier is required.
type LoginInput struct {
	Email    string `json:"email"    validate:"omitempty,email"`
	Mobile   string `json:"mobile"   validate:"omitempty,mobile"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput carries the authenticated user and their access token.
type LoginOutput struct {
	User        SanitizedUser
	AccessToken string
}

// Login authenticates by email or mobile plus password and issues a signed
// access token. Unknown account and wrong password responses are distinct on
// purpose; enumeration hardening is out of scope here.
func (u *Usecase) Login(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	ctx, span := startSpan(ctx, "auth.Login")
	defer span.End()

	if err := u.validator.Validate(in); err != nil {
		return nil, err
	}

	identifier := lo.CoalesceOrEmpty(in.Email, in.Mobile)
	if identifier == "" {
		return nil, goerror.NewInvalidInput(nil, "account", "Either email or mobile number is required")
	}

	user, err := u.db.GetUserByEmailOrMobile(ctx, identifier)
	if err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return nil, goerror.NewBusinessFields(
				"No account found with this email or mobile number.",
				goerror.CodeUnauthorized,
				map[string]string{"account": "No account found with this email or mobile number."},
			)
		}

		return nil, goerror.NewServer(err)
	}

	if !u.hash.Verify(user.Password, in.Password) {
		return nil, goerror.NewBusinessFields(
			"Incorrect password. Please try again.",
			goerror.CodeUnauthorized,
			map[string]string{"password": "Incorrect password. Please try again."},
		)
	}

	token, err := u.jwt.Generate(user.ID, user.Email, user.Mobile)
	if err != nil {
		return nil, goerror.NewServer(err)
	}

	return &LoginOutput{User: sanitize(user), AccessToken: token}, nil
}
