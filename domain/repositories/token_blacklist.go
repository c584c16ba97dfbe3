package repositories

import (
	"context"
	"time"
)

// TokenBlacklist records revoked refresh-token ids until they expire.
type TokenBlacklist interface {
	Add(ctx context.Context, jti string, ttl time.Duration) error
	Contains(ctx context.Context, jti string) (bool, error)
}
