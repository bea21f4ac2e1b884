// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"onyxgas/config"

	"github.com/go-redis/redis/v8"
)

// InitRedis connects the Redis client used for the settled-confirmation cache
// and verifies the connection.
func InitRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	return client
}
