package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"miamiam-bot/internal/infrastructure/config"
)

// Store 後備回覆緩存的共用介面，memory 與 redis 驅動都實作它
type Store interface {
	Get(ctx context.Context, prompt string) (string, error)
	Set(ctx context.Context, prompt, value string) error
	Stats() map[string]interface{}
	Close() error
}

// New 依設定建立緩存，未啟用時回傳 nil（呼叫端視為無緩存）
func New(cfg *config.Config) (Store, error) {
	if !cfg.Cache.Enabled {
		return nil, nil
	}

	switch cfg.Cache.Driver {
	case "redis":
		return newRedisStore(&cfg.Cache)
	case "memory":
		return newMemoryStore(&cfg.Cache), nil
	default:
		return nil, fmt.Errorf("unknown cache driver: %s", cfg.Cache.Driver)
	}
}

// cacheKey 以 prompt 雜湊產生緩存鍵，避免把原文放進鍵裡
func cacheKey(prompt string) string {
	hash := sha256.Sum256([]byte(prompt))
	return "chat:reply:" + hex.EncodeToString(hash[:])
}
