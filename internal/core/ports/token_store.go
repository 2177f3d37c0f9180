package ports

import (
	"context"
	"time"
)

// RefreshTokenStore tracks which refresh-token ids (jti claims) are still
// redeemable. Tokens are single use: Consume removes the id atomically and
// reports whether it was present.
type RefreshTokenStore interface {
	Save(ctx context.Context, jti string, ttl time.Duration) error
	Consume(ctx context.Context, jti string) (bool, error)
}
