// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"sweepstack/config"

	"github.com/go-redis/redis/v8"
)

var (
	// RateSheetCacheClient caches the current rate-sheet snapshot so pricing
	// reads do not hit Mongo on every quote.
	RateSheetCacheClient *redis.Client
)

// InitRedis initializes all Redis clients up front.
func InitRedis() {
	InitRateSheetCache()
}

// InitRateSheetCache initializes the Redis client for rate-sheet snapshots.
func InitRateSheetCache() {
	RateSheetCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := RateSheetCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (RateSheet Cache): %v", err)
	}
}

// GetRateSheetCacheClient returns the rate-sheet cache client.
func GetRateSheetCacheClient() *redis.Client {
	if RateSheetCacheClient == nil {
		InitRateSheetCache()
	}
	return RateSheetCacheClient
}
