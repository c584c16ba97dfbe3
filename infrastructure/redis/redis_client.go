package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"cattle-tracker/domain/repositories"
)

type Config struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func NewClient(config Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Host + ":" + config.Port,
		Password: config.Password,
		DB:       config.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

// TokenBlacklistImpl stores revoked refresh-token ids with a TTL matching the
// token's remaining lifetime, so entries expire on their own.
type TokenBlacklistImpl struct {
	client *redis.Client
}

func NewTokenBlacklist(client *redis.Client) repositories.TokenBlacklist {
	return &TokenBlacklistImpl{client: client}
}

func (b *TokenBlacklistImpl) Add(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		// Already expired; nothing to revoke.
		return nil
	}
	return b.client.Set(ctx, blacklistKey(jti), "1", ttl).Err()
}

func (b *TokenBlacklistImpl) Contains(ctx context.Context, jti string) (bool, error) {
	n, err := b.client.Exists(ctx, blacklistKey(jti)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func blacklistKey(jti string) string {
	return "blacklist:" + jti
}
