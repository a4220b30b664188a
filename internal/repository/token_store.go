package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const refreshKeyPrefix = "refresh:"

// TokenStore keeps issued refresh tokens so they can be rotated and revoked.
type TokenStore interface {
	SaveRefreshToken(ctx context.Context, memberIdx int, token string, ttl time.Duration) error
	ValidRefreshToken(ctx context.Context, memberIdx int, token string) (bool, error)
	DeleteRefreshToken(ctx context.Context, memberIdx int) error
}

type tokenStore struct {
	client *redis.Client
}

// NewTokenStore creates a redis-backed TokenStore
func NewTokenStore(client *redis.Client) TokenStore {
	return &tokenStore{client: client}
}

func refreshKey(memberIdx int) string {
	return fmt.Sprintf("%s%d", refreshKeyPrefix, memberIdx)
}

func (s *tokenStore) SaveRefreshToken(ctx context.Context, memberIdx int, token string, ttl time.Duration) error {
	return s.client.Set(ctx, refreshKey(memberIdx), token, ttl).Err()
}

// ValidRefreshToken reports whether the presented token is the one currently
// issued for this member. 회전된(예전) 토큰은 무효.
func (s *tokenStore) ValidRefreshToken(ctx context.Context, memberIdx int, token string) (bool, error) {
	stored, err := s.client.Get(ctx, refreshKey(memberIdx)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return stored == token, nil
}

func (s *tokenStore) DeleteRefreshToken(ctx context.Context, memberIdx int) error {
	return s.client.Del(ctx, refreshKey(memberIdx)).Err()
}
