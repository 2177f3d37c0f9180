package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RefreshTokenStore tracks redeemable refresh-token ids in Redis.
// Key format: refresh:<jti>. A token is single use: Consume deletes the key
// atomically, so a replayed refresh token finds nothing to redeem.
type RefreshTokenStore struct {
	client *redis.Client
}

// NewRefreshTokenStore creates a RefreshTokenStore wrapping the given client.
func NewRefreshTokenStore(client *redis.Client) *RefreshTokenStore {
	return &RefreshTokenStore{client: client}
}

// Save records a freshly issued refresh-token id; the entry expires with the
// token itself.
func (s *RefreshTokenStore) Save(ctx context.Context, jti string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(jti), "1", ttl).Err(); err != nil {
		return fmt.Errorf("save refresh token: %w", err)
	}
	return nil
}

// Consume removes the token id and reports whether it was still redeemable.
func (s *RefreshTokenStore) Consume(ctx context.Context, jti string) (bool, error) {
	n, err := s.client.Del(ctx, s.key(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("consume refresh token: %w", err)
	}
	return n > 0, nil
}

func (s *RefreshTokenStore) key(jti string) string {
	return "refresh:" + jti
}
