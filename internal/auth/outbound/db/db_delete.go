package db

import (
	"context"
	"time"
)

// consumeOtpQuery deletes the newest record matching the user and code, but
// only when it is still within its validity window. Running match and delete
// as one statement makes consumption atomic: concurrent submissions of the
// same code race on the row delete and exactly one wins.
const consumeOtpQuery = `
DELETE FROM auth_otps
WHERE id = (
    SELECT id FROM auth_otps
    WHERE user_id = $1 AND code = $2
    ORDER BY created_at DESC, id DESC
    LIMIT 1
)
AND expires_at >= $3`

// ConsumeOtp removes the code and reports whether a valid one existed.
// Expired rows are left behind; they can never match again and retention
// cleanup owns their removal.
func (d *DB) ConsumeOtp(ctx context.Context, userID int64, code string, now time.Time) (ok bool, err error) {
	ctx, span := startSpan(ctx, "db.ConsumeOtp")
	defer func() { endSpan(span, err) }()

	tag, err := d.pool.Exec(ctx, consumeOtpQuery, userID, code, now)
	if err != nil {
		return false, mapError(err)
	}

	return tag.RowsAffected() == 1, nil
}

// DeleteExpiredOtps removes codes whose validity window has passed. Intended
// for the periodic cleanup job.
func (d *DB) DeleteExpiredOtps(ctx context.Context, now time.Time) (removed int64, err error) {
	ctx, span := startSpan(ctx, "db.DeleteExpiredOtps")
	defer func() { endSpan(span, err) }()

	tag, err := d.pool.Exec(ctx, `DELETE FROM auth_otps WHERE expires_at < $1`, now)
	if err != nil {
		return 0, mapError(err)
	}

	return tag.RowsAffected(), nil
}
