package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Viper is a Config implementation backed by spf13/viper. It reads a YAML
// file, allows environment variables to override keys, and hot-reloads the
// file when it changes on disk.
type Viper struct {
	v *viper.Viper
}

// NewViper loads configuration from the given file path.
func NewViper(path string) (*Viper, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		slog.Info("configuration file changed", "file", e.Name)
	})
	v.WatchConfig()

	return &Viper{v: v}, nil
}

// GetString returns the string value for the key.
func (c *Viper) GetString(key string) string {
	return c.v.GetString(key)
}

// GetInt returns the int value for the key.
func (c *Viper) GetInt(key string) int {
	return c.v.GetInt(key)
}

// GetBool returns the bool value for the key.
func (c *Viper) GetBool(key string) bool {
	return c.v.GetBool(key)
}

// GetDuration returns the duration value for the key.
func (c *Viper) GetDuration(key string) time.Duration {
	return c.v.GetDuration(key)
}
