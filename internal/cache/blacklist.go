package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "revoked:"

// NewRedisClient initializes a redis client.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// TokenBlacklist records revoked token ids until the tokens would have
// expired on their own.
type TokenBlacklist interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

type RedisBlacklist struct {
	rdb *redis.Client
}

func NewRedisBlacklist(rdb *redis.Client) *RedisBlacklist {
	return &RedisBlacklist{rdb: rdb}
}

func (b *RedisBlacklist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		// Token already expired, nothing left to deny.
		return nil
	}
	return b.rdb.Set(ctx, revokedKeyPrefix+jti, "1", ttl).Err()
}

func (b *RedisBlacklist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	err := b.rdb.Get(ctx, revokedKeyPrefix+jti).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
