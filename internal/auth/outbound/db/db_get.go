package db

import (
	"context"

	"github.com/wicaksn/otpgate/internal/auth/entity"
)

const userColumns = `id, name, email, mobile, password, created_at`

func (d *DB) getUser(ctx context.Context, query string, arg any) (*entity.User, error) {
	var u entity.User
	err := d.pool.QueryRow(ctx, query, arg).
		Scan(&u.ID, &u.Name, &u.Email, &u.Mobile, &u.Password, &u.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}

	return &u, nil
}

// GetUserByID fetches a user by primary key.
func (d *DB) GetUserByID(ctx context.Context, id int64) (u *entity.User, err error) {
	ctx, span := startSpan(ctx, "db.GetUserByID")
	defer func() { endSpan(span, err) }()

	return d.getUser(ctx, `SELECT `+userColumns+` FROM auth_users WHERE id = $1`, id)
}

// GetUserByEmail fetches a user by email.
func (d *DB) GetUserByEmail(ctx context.Context, email string) (u *entity.User, err error) {
	ctx, span := startSpan(ctx, "db.GetUserByEmail")
	defer func() { endSpan(span, err) }()

	return d.getUser(ctx, `SELECT `+userColumns+` FROM auth_users WHERE email = $1`, email)
}

// GetUserByMobile fetches a user by mobile number.
func (d *DB) GetUserByMobile(ctx context.Context, mobile string) (u *entity.User, err error) {
	ctx, span := startSpan(ctx, "db.GetUserByMobile")
	defer func() { endSpan(span, err) }()

	return d.getUser(ctx, `SELECT `+userColumns+` FROM auth_users WHERE mobile = $1`, mobile)
}

// GetUserByEmailOrMobile fetches a user matching the identifier against
// either unique column. Both columns are unique so at most one row matches.
func (d *DB) GetUserByEmailOrMobile(ctx context.Context, identifier string) (u *entity.User, err error) {
	ctx, span := startSpan(ctx, "db.GetUserByEmailOrMobile")
	defer func() { endSpan(span, err) }()

	return d.getUser(ctx,
		`SELECT `+userColumns+` FROM auth_users WHERE email = $1 OR mobile = $1`, identifier)
}
