package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/lo"

	"github.com/wicaksn/otpgate/internal/shared/event"
)

// ConsumeOtpIssued delivers the verification code by SMS. The user id and
// code pair keys deduplication, so a broker redelivery of the same issuance
// does not text the user twice.
//
// Delivery failures are logged and swallowed: the stored code stays valid
// and the user can request a new one, while returning an error here would
// fight the dedup guard on redelivery.
func (u *Usecase) ConsumeOtpIssued(ctx context.Context, msg event.OtpIssuedMessage) error {
	ctx, span := startSpan(ctx, "notification.ConsumeOtpIssued")
	defer span.End()

	masked := maskMobile(msg.Mobile)

	first, err := u.dedup.FirstSeen(ctx, fmt.Sprintf("otp-issued:%d:%s", msg.UserID, msg.Code))
	if err != nil {
		return err
	}
	if !first {
		slog.InfoContext(ctx, "duplicate otp issuance skipped", "user_id", msg.UserID, "mobile", masked)
		return nil
	}

	validFor := msg.ExpiresAt.Sub(u.clock.Now())
	if err := u.sms.SendOtp(ctx, msg.Mobile, msg.Name, msg.Code, validFor); err != nil {
		slog.ErrorContext(ctx, "otp sms delivery failed", "user_id", msg.UserID, "mobile", masked, "error", err)
		return nil
	}

	slog.InfoContext(ctx, "otp sms delivered", "user_id", msg.UserID, "mobile", masked)

	return nil
}

// maskMobile keeps only the last four digits for log output.
func maskMobile(mobile string) string {
	if len(mobile) <= 4 {
		return mobile
	}

	return "******" + lo.Substring(mobile, -4, 4)
}
