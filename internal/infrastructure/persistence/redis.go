package persistence

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to Redis, retrying the initial ping
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := retry(ctx, func() error { return client.Ping(ctx).Err() }); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
