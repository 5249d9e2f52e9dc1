package idempotency

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Store remembers which webhook deliveries have already been processed.
type Store interface {
	// MarkProcessed records id and reports true when it was not seen before.
	MarkProcessed(ctx context.Context, id string, ttl time.Duration) (bool, error)
	// Close releases resources.
	Close() error
}

// Config holds the de-duplication settings.
type Config struct {
	// Backend is memory, redis or none.
	Backend string `mapstructure:"backend" default:"memory"`
	// TTLSeconds is how long a delivery id is remembered.
	TTLSeconds int `mapstructure:"ttl_seconds" default:"86400"`
	// RedisAddr is the host:port of the redis server.
	RedisAddr string `mapstructure:"redis_addr" default:"localhost:6379"`
	// RedisPassword authenticates against redis.
	RedisPassword string `mapstructure:"redis_password" default:""`
	// RedisDB selects the redis database.
	RedisDB int `mapstructure:"redis_db" default:"0"`
	// KeyPrefix namespaces the redis keys.
	KeyPrefix string `mapstructure:"key_prefix" default:"size-sync:webhook:"`
}

// TTL returns the retention window for delivery ids.
func (c Config) TTL() time.Duration {
	if c.TTLSeconds <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(c.TTLSeconds) * time.Second
}

// New builds the configured store. The none backend returns a nil Store.
func New(cfg Config) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Backend)) {
	case "", "memory":
		return NewMemoryStore(), nil
	case "redis":
		store, err := NewRedisStore(cfg)
		if err != nil {
			return nil, err
		}
		return store, nil
	case "none", "off":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown idempotency backend: %s", cfg.Backend)
	}
}
