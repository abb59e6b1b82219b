package usecase

import (
	"context"

	"github.com/wicaksn/otpgate/internal/pkg/goerror"
)

// PurgeExpiredOtps removes codes past their validity window. Verification
// never matches expired rows, so this is retention hygiene rather than a
// correctness requirement. Runs on a schedule from the module wiring.
func (u *Usecase) PurgeExpiredOtps(ctx context.Context) (int64, error) {
	ctx, span := startSpan(ctx, "auth.PurgeExpiredOtps")
	defer span.End()

	removed, err := u.db.DeleteExpiredOtps(ctx, u.clock.Now())
	if err != nil {
		return 0, goerror.NewServer(err)
	}

	return removed, nil
}
