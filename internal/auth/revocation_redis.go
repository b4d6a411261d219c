package auth

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	blockKeyPrefix   = "auth:block:"
	refreshKeyPrefix = "auth:refresh:"
)

// RedisRevocationStore implements RevocationStore on a shared Redis instance
// so revocations are visible to every service replica.
type RedisRevocationStore struct {
	client *redis.Client
}

// NewRedisRevocationStore wraps the given client.
func NewRedisRevocationStore(client *redis.Client) *RedisRevocationStore {
	return &RedisRevocationStore{client: client}
}

func (s *RedisRevocationStore) Block(ctx context.Context, tokenString string, ttl time.Duration) error {
	if ttl <= 0 {
		// Token already past its natural expiry; nothing left to shadow.
		return nil
	}
	if err := s.client.Set(ctx, blockKeyPrefix+tokenString, "blocked", ttl).Err(); err != nil {
		return ErrStoreUnavailable
	}
	return nil
}

func (s *RedisRevocationStore) IsBlocked(ctx context.Context, tokenString string) (bool, error) {
	return s.exists(ctx, blockKeyPrefix+tokenString)
}

func (s *RedisRevocationStore) RegisterRefresh(ctx context.Context, subject string, ttl time.Duration) error {
	if err := s.client.Set(ctx, refreshKeyPrefix+subject, "refresh", ttl).Err(); err != nil {
		return ErrStoreUnavailable
	}
	return nil
}

func (s *RedisRevocationStore) HasRefresh(ctx context.Context, subject string) (bool, error) {
	return s.exists(ctx, refreshKeyPrefix+subject)
}

func (s *RedisRevocationStore) ClearRefresh(ctx context.Context, subject string) error {
	if err := s.client.Del(ctx, refreshKeyPrefix+subject).Err(); err != nil {
		return ErrStoreUnavailable
	}
	return nil
}

func (s *RedisRevocationStore) exists(ctx context.Context, key string) (bool, error) {
	err := s.client.Get(ctx, key).Err()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, redis.Nil):
		return false, nil
	default:
		return false, ErrStoreUnavailable
	}
}
