// Package redis stores revoked access-token IDs in Redis so every server
// instance rejects a token after logout.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/expense-tracker/internal/config"
)

const keyPrefix = "denylist:jti:"

// NewClient connects to Redis and pings it so a bad address fails at startup.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return client, nil
}

// Denylist is a Redis-backed access-token denylist. Entries expire on their
// own through the key TTL.
type Denylist struct {
	client *goredis.Client
}

// NewDenylist creates a denylist on top of an existing client.
func NewDenylist(client *goredis.Client) *Denylist {
	return &Denylist{client: client}
}

// Deny records tokenID as revoked until the given time.
// A token that has already expired is not stored.
func (d *Denylist) Deny(ctx context.Context, tokenID string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}

	if err := d.client.Set(ctx, keyPrefix+tokenID, 1, ttl).Err(); err != nil {
		return fmt.Errorf("redis.Deny: %w", err)
	}
	return nil
}

// IsDenied reports whether tokenID is currently revoked.
func (d *Denylist) IsDenied(ctx context.Context, tokenID string) (bool, error) {
	err := d.client.Get(ctx, keyPrefix+tokenID).Err()
	if errors.Is(err, goredis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis.IsDenied: %w", err)
	}
	return true, nil
}
