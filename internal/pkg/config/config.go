// Package config abstracts application configuration access.
package config

import "time"

// Config exposes typed access to configuration values by dotted key.
type Config interface {
	GetString(key string) string
	GetInt(key string) int
	GetBool(key string) bool
	GetDuration(key string) time.Duration
}
