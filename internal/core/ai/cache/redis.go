package cache

import (
	"context"
	"fmt"
	"sync/atomic"

	"miamiam-bot/internal/infrastructure/config"
	"miamiam-bot/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// redisStore Redis 緩存：多個實例共用同一份後備回覆，
// 逾時交給 Redis 的 TTL 處理
type redisStore struct {
	config *config.CacheConfig
	client *redis.Client

	hits   int64
	misses int64
	errors int64
}

func newRedisStore(cfg *config.CacheConfig) (*redisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	common.LogInfo("Redis 快取已初始化",
		zap.String("addr", cfg.RedisAddr),
		zap.Duration("存活時間", cfg.TTL),
	)

	return &redisStore{
		config: cfg,
		client: client,
	}, nil
}

// Get 查詢緩存
func (s *redisStore) Get(ctx context.Context, prompt string) (string, error) {
	key := cacheKey(prompt)

	value, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			atomic.AddInt64(&s.misses, 1)
			common.LogCacheMiss("redis", key)
			return "", common.ErrCacheDisabled
		}
		atomic.AddInt64(&s.errors, 1)
		return "", fmt.Errorf("failed to get cache: %w", err)
	}

	atomic.AddInt64(&s.hits, 1)
	common.LogCacheHit("redis", key)
	return value, nil
}

// Set 寫入緩存
func (s *redisStore) Set(ctx context.Context, prompt, value string) error {
	if err := s.client.Set(ctx, cacheKey(prompt), value, s.config.TTL).Err(); err != nil {
		atomic.AddInt64(&s.errors, 1)
		return fmt.Errorf("failed to set cache: %w", err)
	}
	return nil
}

// Stats 回傳緩存統計
func (s *redisStore) Stats() map[string]interface{} {
	hits := atomic.LoadInt64(&s.hits)
	misses := atomic.LoadInt64(&s.misses)

	total := hits + misses
	hitRatio := 0.0
	if total > 0 {
		hitRatio = float64(hits) / float64(total)
	}

	return map[string]interface{}{
		"driver":    "redis",
		"hits":      hits,
		"misses":    misses,
		"errors":    atomic.LoadInt64(&s.errors),
		"hit_ratio": hitRatio,
	}
}

// Close 關閉 Redis 連線
func (s *redisStore) Close() error {
	return s.client.Close()
}
