// Package idempotency guards against duplicate processing of delivered
// messages using a shared Redis key space.
package idempotency

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Checker reports whether a key is seen for the first time.
type Checker interface {
	FirstSeen(ctx context.Context, key string) (bool, error)
}

// Redis is a Checker backed by redis SET NX with a retention window. Keys
// older than the window may be processed again; message handlers must remain
// safe under that.
type Redis struct {
	client    redis.UniversalClient
	prefix    string
	retention time.Duration
}

// NewRedis creates the checker. Retention bounds how long duplicates are
// remembered.
func NewRedis(client redis.UniversalClient, prefix string, retention time.Duration) *Redis {
	return &Redis{client: client, prefix: prefix, retention: retention}
}

// FirstSeen returns true when the key was not observed within the retention
// window, recording it atomically.
func (r *Redis) FirstSeen(ctx context.Context, key string) (bool, error) {
	return r.client.SetNX(ctx, r.prefix+":"+key, 1, r.retention).Result()
}
