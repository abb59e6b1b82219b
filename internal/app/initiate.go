package app

import (
	"context"
	"io/fs"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/sethvargo/go-retry"

	"github.com/wicaksn/otpgate/internal/pkg/config"
	"github.com/wicaksn/otpgate/internal/pkg/messaging"
)

// infrastructure groups the external connections shared by all modules.
type infrastructure struct {
	pool      *pgxpool.Pool
	redis     redis.UniversalClient
	messaging messaging.Client
}

func (i *infrastructure) close() {
	if err := i.messaging.Close(); err != nil {
		slog.Error("close messaging failed", "error", err)
	}
	if err := i.redis.Close(); err != nil {
		slog.Error("close redis failed", "error", err)
	}
	i.pool.Close()
}

// pingBackoff retries startup health checks while dependencies come up, for
// example when the database container starts alongside the service.
func pingBackoff() retry.Backoff {
	return retry.WithMaxRetries(5, retry.NewExponential(500*time.Millisecond))
}

func initiate(ctx context.Context, cfg config.Config, migrations fs.FS) (*infrastructure, error) {
	pool, err := newPostgres(ctx, cfg, migrations)
	if err != nil {
		return nil, err
	}

	rdb, err := newRedis(ctx, cfg)
	if err != nil {
		pool.Close()
		return nil, err
	}

	mq, err := messaging.New(cfg)
	if err != nil {
		_ = rdb.Close()
		pool.Close()
		return nil, err
	}

	return &infrastructure{pool: pool, redis: rdb, messaging: mq}, nil
}

func newPostgres(ctx context.Context, cfg config.Config, migrations fs.FS) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.GetString("database.url"))
	if err != nil {
		return nil, err
	}

	if maxConns := cfg.GetInt("database.maxConns"); maxConns > 0 {
		poolCfg.MaxConns = int32(maxConns)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}

	err = retry.Do(ctx, pingBackoff(), func(ctx context.Context) error {
		return retry.RetryableError(pool.Ping(ctx))
	})
	if err != nil {
		pool.Close()
		return nil, err
	}

	if err := migrate(pool, migrations); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

func migrate(pool *pgxpool.Pool, migrations fs.FS) error {
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	return goose.Up(db, "migrations")
}

func newRedis(ctx context.Context, cfg config.Config) (redis.UniversalClient, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.GetString("redis.address"),
		Password: cfg.GetString("redis.password"),
		DB:       cfg.GetInt("redis.db"),
	})

	err := retry.Do(ctx, pingBackoff(), func(ctx context.Context) error {
		return retry.RetryableError(rdb.Ping(ctx).Err())
	})
	if err != nil {
		_ = rdb.Close()
		return nil, err
	}

	return rdb, nil
}
