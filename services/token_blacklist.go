package services

import (
	"context"
	"fmt"
	"time"

	"taskpulse/logger"

	"github.com/redis/go-redis/v9"
)

// RedisTokenBlacklist remembers logged-out tokens until they would have
// expired anyway. A nil blacklist accepts every token.
type RedisTokenBlacklist struct {
	Client *redis.Client
}

// NewTokenBlacklist wraps client after checking that Redis answers.
func NewTokenBlacklist(ctx context.Context, client *redis.Client) (*RedisTokenBlacklist, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return &RedisTokenBlacklist{Client: client}, nil
}

func blacklistKey(tokenID string) string {
	return "blacklist:access:" + tokenID
}

// Blacklist stores the token id until expiresAt.
func (tb *RedisTokenBlacklist) Blacklist(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if tb == nil {
		return nil
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	if err := tb.Client.Set(ctx, blacklistKey(tokenID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to blacklist token in Redis: %w", err)
	}
	return nil
}

// IsBlacklisted fails open: a Redis error is logged and the token allowed.
func (tb *RedisTokenBlacklist) IsBlacklisted(ctx context.Context, tokenID string) bool {
	if tb == nil {
		return false
	}
	n, err := tb.Client.Exists(ctx, blacklistKey(tokenID)).Result()
	if err != nil {
		logger.Warn("token blacklist lookup failed", "error", err)
		return false
	}
	return n > 0
}
