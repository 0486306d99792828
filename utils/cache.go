// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"trimly/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

var (
	// CacheClient is the generic cache client (insights snapshots, day agendas).
	CacheClient *redis.Client
	// AuthCacheClient is the dedicated client for authorization caching.
	AuthCacheClient *redis.Client
)

// InitRedis initializes all Redis clients used by the server.
func InitRedis() {
	InitCache()
	InitAuthCache()
}

// InitCache initializes the generic Redis cache client.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitAuthCache initializes the Redis client for authorization caching.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := AuthCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// GetAuthCacheClient returns the Redis client for authorization caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}

func shopAuthKey(shopID string) string {
	return AuthCacheKeyPrefix + shopID
}

// GetCachedShopAuthHash returns the cached token hash for a shop. A cache
// miss, or an unconfigured auth cache, surfaces as an error.
func GetCachedShopAuthHash(ctx context.Context, shopID string) (string, error) {
	if AuthCacheClient == nil {
		return "", redis.Nil
	}
	return AuthCacheClient.Get(ctx, shopAuthKey(shopID)).Result()
}

// CacheShopAuthHash stores a shop's current token hash for fast auth checks.
func CacheShopAuthHash(ctx context.Context, shopID, hash string) {
	if AuthCacheClient == nil || hash == "" {
		return
	}
	if err := AuthCacheClient.Set(ctx, shopAuthKey(shopID), hash, AuthCacheTTL).Err(); err != nil {
		GetLogger().Warn("failed to cache shop auth hash", zap.String("shopID", shopID), zap.Error(err))
	}
}

// InvalidateShopAuth drops the cached token hash so revocation takes effect
// immediately.
func InvalidateShopAuth(ctx context.Context, shopID string) {
	if AuthCacheClient == nil {
		return
	}
	if err := AuthCacheClient.Del(ctx, shopAuthKey(shopID)).Err(); err != nil {
		GetLogger().Warn("failed to invalidate shop auth cache", zap.String("shopID", shopID), zap.Error(err))
	}
}
