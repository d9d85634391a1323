package storage

import (
	"context"
	"fmt"

	"github.com/payloop/billing/config"
	"github.com/redis/go-redis/v9"
)

// RedisClient holds the redis connection, shared by the webhook audit log and
// the live event broadcast.
var RedisClient *redis.Client

// InitializeRedis connects to redis and verifies the connection
func InitializeRedis() error {
	opts, err := redis.ParseURL(config.ServerConfig().RedisURL)
	if err != nil {
		return fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return fmt.Errorf("failed to ping redis: %w", err)
	}

	RedisClient = client
	return nil
}
