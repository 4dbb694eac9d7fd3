package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStore tracks the token ids a user currently holds. A token that
// is absent from the store is treated as revoked even if its signature
// is still valid, which is what makes logout and logout-all work.
type TokenStore interface {
	Save(ctx context.Context, userID uint, tokenID string, ttl time.Duration) error
	Exists(ctx context.Context, userID uint, tokenID string) (bool, error)
	Revoke(ctx context.Context, userID uint, tokenID string) error
	RevokeAll(ctx context.Context, userID uint) error
}

// RedisTokenStore is the redis-backed TokenStore used in production
type RedisTokenStore struct {
	rdb *redis.Client
}

// NewRedisTokenStore creates a new RedisTokenStore
func NewRedisTokenStore(rdb *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{rdb: rdb}
}

func tokenKey(userID uint, tokenID string) string {
	return fmt.Sprintf("token:%d:%s", userID, tokenID)
}

// Save records an issued token id with the token's remaining lifetime
func (s *RedisTokenStore) Save(ctx context.Context, userID uint, tokenID string, ttl time.Duration) error {
	return s.rdb.Set(ctx, tokenKey(userID, tokenID), 1, ttl).Err()
}

// Exists reports whether a token id is still live
func (s *RedisTokenStore) Exists(ctx context.Context, userID uint, tokenID string) (bool, error) {
	n, err := s.rdb.Exists(ctx, tokenKey(userID, tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Revoke removes a single token id
func (s *RedisTokenStore) Revoke(ctx context.Context, userID uint, tokenID string) error {
	return s.rdb.Del(ctx, tokenKey(userID, tokenID)).Err()
}

// RevokeAll removes every token id held by a user
func (s *RedisTokenStore) RevokeAll(ctx context.Context, userID uint) error {
	pattern := fmt.Sprintf("token:%d:*", userID)
	iter := s.rdb.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := s.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
