// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"clinovia/config"
)

var (
	// CacheClient is the generic cache client (specialty/doctor catalogue).
	CacheClient *redis.Client
	// BookingCacheClient holds in-progress booking wizard sessions.
	BookingCacheClient *redis.Client
	// PendingCacheClient holds the pending-appointment outbox.
	PendingCacheClient *redis.Client
)

func newRedisClient(db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (db %d): %v", db, err)
	}
	return client
}

// InitRedis initializes all Redis clients used by the portal.
func InitRedis() {
	CacheClient = newRedisClient(config.AppConfig.RedisCacheDB)
	BookingCacheClient = newRedisClient(config.AppConfig.RedisBookingDB)
	PendingCacheClient = newRedisClient(config.AppConfig.RedisPendingDB)
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		CacheClient = newRedisClient(config.AppConfig.RedisCacheDB)
	}
	return CacheClient
}

// GetBookingCacheClient returns the Redis client for booking sessions.
func GetBookingCacheClient() *redis.Client {
	if BookingCacheClient == nil {
		BookingCacheClient = newRedisClient(config.AppConfig.RedisBookingDB)
	}
	return BookingCacheClient
}

// GetPendingCacheClient returns the Redis client for the pending outbox.
func GetPendingCacheClient() *redis.Client {
	if PendingCacheClient == nil {
		PendingCacheClient = newRedisClient(config.AppConfig.RedisPendingDB)
	}
	return PendingCacheClient
}
