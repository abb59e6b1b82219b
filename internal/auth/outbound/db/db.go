// Package db implements auth persistence on PostgreSQL via pgx.
package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/wicaksn/otpgate/internal/pkg/goerror"
)

// pgUniqueViolation is the SQLSTATE for unique constraint violations.
const pgUniqueViolation = "23505"

// DB is the auth module's PostgreSQL gateway.
type DB struct {
	pool *pgxpool.Pool
}

// New wraps the connection pool.
func New(pool *pgxpool.Pool) *DB {
	return &DB{pool: pool}
}

// mapError normalizes driver errors into the application's sentinel errors.
func mapError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return goerror.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return goerror.ErrConflict
	}

	return err
}

func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return otel.Tracer("github.com/wicaksn/otpgate/internal/auth/outbound/db").Start(ctx, name)
}

func endSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, goerror.ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	span.End()
}
