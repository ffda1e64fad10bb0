package cache

import (
	"fmt"
	"quiz-runner/internal/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient creates a Redis client. It does not dial; callers check
// reachability through the cache adapter.
func NewRedisClient(redisCfg config.RedisConfig) (*redis.Client, error) {
	if redisCfg.Address == "" {
		return nil, fmt.Errorf("redis configuration is missing or address is empty")
	}

	return redis.NewClient(&redis.Options{
		Addr:     redisCfg.Address,
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
	}), nil
}
