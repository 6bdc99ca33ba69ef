package database

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/allisson/pfvault/internal/errors"
)

// DriverRedis selects the Redis record store instead of a SQL database.
const DriverRedis = "redis"

// ConnectRedis opens a Redis client for url (redis://[:password@]host:port/db) and pings it.
// Any failure is reported as ErrUnavailable.
func ConnectRedis(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid redis url: %w", apperrors.ErrUnavailable, err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: failed to ping redis: %w", apperrors.ErrUnavailable, err)
	}

	return client, nil
}

// RedisPinger adapts a Redis client to the PingContext method exposed by *sql.DB.
type RedisPinger struct {
	Client redis.UniversalClient
}

// PingContext pings the Redis server.
func (p RedisPinger) PingContext(ctx context.Context) error {
	return p.Client.Ping(ctx).Err()
}
