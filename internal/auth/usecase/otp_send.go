package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/wicaksn/otpgate/internal/auth/entity"
	"github.com/wicaksn/otpgate/internal/pkg/goerror"
	"github.com/wicaksn/otpgate/internal/shared/event"
)

// SendOtpInput requests a verification code for the mobile number.
type SendOtpInput struct {
	Mobile string `json:"mobile" validate:"required,mobile"`
}

// SendOtpOutput echoes the destination number back to the caller.
type SendOtpOutput struct {
	Mobile string
}

// SendOtp generates a fresh 6-digit code for the account owning the mobile
// number, stores it with a 5 minute validity window and hands delivery to
// the notification module.
//
// Dispatch is fire and forget: a publish failure is logged but never turns a
// stored code into a client error, since the code itself remains valid.
func (u *Usecase) SendOtp(ctx context.Context, in SendOtpInput) (*SendOtpOutput, error) {
	ctx, span := startSpan(ctx, "auth.SendOtp")
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

	code, err := u.otp.Generate()
	if err != nil {
		return nil, goerror.NewServer(err)
	}

	now := u.clock.Now()
	rec := entity.OtpRecord{
		ID:        u.numID.Generate(),
		UserID:    user.ID,
		Code:      code,
		CreatedAt: now,
		ExpiresAt: now.Add(otpValidity),
	}

	if err := u.db.CreateOtp(ctx, rec); err != nil {
		return nil, goerror.NewServer(err)
	}

	msg := event.OtpIssuedMessage{
		UserID:    user.ID,
		Name:      user.Name,
		Mobile:    user.Mobile,
		Code:      code,
		ExpiresAt: rec.ExpiresAt,
	}
	if err := u.pub.PublishOtpIssued(ctx, msg); err != nil {
		slog.ErrorContext(ctx, "publish otp issued failed", "user_id", user.ID, "error", err)
	}

	return &SendOtpOutput{Mobile: in.Mobile}, nil
}
