package db

import (
	"context"

	"github.com/wicaksn/otpgate/internal/auth/entity"
)

const createUserQuery = `
INSERT INTO auth_users (id, name, email, mobile, password, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

// CreateUser inserts the account. Unique index hits on email or mobile come
// back as goerror.ErrConflict.
func (d *DB) CreateUser(ctx context.Context, user entity.User) (err error) {
	ctx, span := startSpan(ctx, "db.CreateUser")
	defer func() { endSpan(span, err) }()

	_, err = d.pool.Exec(ctx, createUserQuery,
		user.ID, user.Name, user.Email, user.Mobile, user.Password, user.CreatedAt)
	if err != nil {
		return mapError(err)
	}

	return nil
}

const createOtpQuery = `
INSERT INTO auth_otps (id, user_id, code, created_at, expires_at)
VALUES ($1, $2, $3, $4, $5)`

// CreateOtp stores a pending code. Existing codes for the user stay in
// place; verification picks the newest match.
func (d *DB) CreateOtp(ctx context.Context, rec entity.OtpRecord) (err error) {
	ctx, span := startSpan(ctx, "db.CreateOtp")
	defer func() { endSpan(span, err) }()

	_, err = d.pool.Exec(ctx, createOtpQuery,
		rec.ID, rec.UserID, rec.Code, rec.CreatedAt, rec.ExpiresAt)
	if err != nil {
		return mapError(err)
	}

	return nil
}
