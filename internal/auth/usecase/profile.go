package usecase

import (
	"context"
	"errors"

	"github.com/wicaksn/otpgate/internal/pkg/goerror"
)

// ProfileOutput carries the requesting user's account data.
type ProfileOutput struct {
	User SanitizedUser
}

// Profile returns the account behind the authenticated token.
func (u *Usecase) Profile(ctx context.Context, userID int64) (*ProfileOutput, error) {
	ctx, span := startSpan(ctx, "auth.Profile")
	defer span.End()

	user, err := u.db.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return nil, goerror.NewBusiness("Account no longer exists", goerror.CodeUnauthorized)
		}

		return nil, goerror.NewServer(err)
	}

	return &ProfileOutput{User: sanitize(user)}, nil
}
