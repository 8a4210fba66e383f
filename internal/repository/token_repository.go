package repository

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const revokedTokenPrefix = "blog:revoked_token:"

// TokenRepository tracks revoked JWT ids until they would have expired anyway
type TokenRepository interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

type redisTokenRepository struct {
	client *redis.Client
}

// NewTokenRepository returns a Redis-backed store, or a no-op store when client is nil
func NewTokenRepository(client *redis.Client) TokenRepository {
	if client == nil {
		return noopTokenRepository{}
	}
	return &redisTokenRepository{client: client}
}

func (r *redisTokenRepository) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return r.client.Set(ctx, revokedTokenPrefix+jti, 1, ttl).Err()
}

func (r *redisTokenRepository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := r.client.Exists(ctx, revokedTokenPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// noopTokenRepository is used when Redis is not configured; logout is then client-side only
type noopTokenRepository struct{}

func (noopTokenRepository) Revoke(context.Context, string, time.Duration) error { return nil }

func (noopTokenRepository) IsRevoked(context.Context, string) (bool, error) { return false, nil }
