package usecase

import (
	"context"
	"errors"

	"github.com/wicaksn/otpgate/internal/pkg/goerror"
)

// VerifyOtpInput submits a code for the account owning the mobile number.
type VerifyOtpInput struct {
	Mobile string `json:"mobile" validate:"required,mobile"`
	Otp    string `json:"otp"    validate:"required"`
}

// VerifyOtpOutput carries the verified account's id.
type VerifyOtpOutput struct {
	UserID int64
}

// VerifyOtp consumes the newest matching code for the account. Consumption
// is a single conditional delete, so two concurrent submissions of the same
// code cannot both succeed. A malformed, unknown, already-used or expired
// code all produce the same error.
func (u *Usecase) VerifyOtp(ctx context.Context, in VerifyOtpInput) (*VerifyOtpOutput, error) {
	ctx, span := startSpan(ctx, "auth.VerifyOtp")
	defer span.End()

	if err := u.validator.Validate(in); err != nil {
		return nil, err
	}

	user, err := u.db.GetUserByMobile(ctx, in.Mobile)
	if err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return nil, goerror.NewBusiness("User not found.", goerror.CodeNotFound)
		}

		return nil, goerror.NewServer(err)
	}

	consumed, err := u.db.ConsumeOtp(ctx, user.ID, in.Otp, u.clock.Now())
	if err != nil {
		return nil, goerror.NewServer(err)
	}

	if !consumed {
		return nil, goerror.NewBusiness("Invalid or expired OTP.", goerror.CodeInvalidInput)
	}

	return &VerifyOtpOutput{UserID: user.ID}, nil
}
