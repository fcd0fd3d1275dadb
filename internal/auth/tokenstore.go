package auth

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	kindSession = "session"
	kindRefresh = "refresh"
)

// TokenStore wraps Redis for issued-token state: each key maps a token id
// to the owning user id and expires with the token.
type TokenStore struct {
	rdb *redis.Client
}

func NewTokenStore(rdb *redis.Client) *TokenStore {
	return &TokenStore{rdb: rdb}
}

func tokenKey(kind, id string) string {
	return kind + ":" + id
}

// Put records id -> userID for ttl.
func (s *TokenStore) Put(ctx context.Context, kind, id, userID string, ttl time.Duration) error {
	return s.rdb.Set(ctx, tokenKey(kind, id), userID, ttl).Err()
}

// Get returns the userID for id, or "" if not found / expired.
func (s *TokenStore) Get(ctx context.Context, kind, id string) (string, error) {
	val, err := s.rdb.Get(ctx, tokenKey(kind, id)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return val, err
}

// Delete removes id. Deleting a missing id is not an error.
func (s *TokenStore) Delete(ctx context.Context, kind, id string) error {
	return s.rdb.Del(ctx, tokenKey(kind, id)).Err()
}
