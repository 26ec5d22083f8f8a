package cache

import (
	"testing"
	"time"

	"miamiam-bot/internal/infrastructure/config"
)

func TestNewDisabled(t *testing.T) {
	store, err := New(&config.Config{Cache: config.CacheConfig{Enabled: false}})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if store != nil {
		t.Error("disabled cache should be nil")
	}
}

func TestNewMemoryDriver(t *testing.T) {
	store, err := New(&config.Config{Cache: config.CacheConfig{
		Enabled:         true,
		Driver:          "memory",
		MaxSize:         10,
		TTL:             time.Hour,
		CleanupInterval: time.Hour,
	}})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if store == nil {
		t.Fatal("expected a memory store")
	}
	store.Close()
}

func TestNewUnknownDriver(t *testing.T) {
	if _, err := New(&config.Config{Cache: config.CacheConfig{Enabled: true, Driver: "tape"}}); err == nil {
		t.Fatal("New() expected error for unknown driver")
	}
}

func TestCacheKeyStable(t *testing.T) {
	if cacheKey("prompt") != cacheKey("prompt") {
		t.Error("cacheKey must be deterministic")
	}
	if cacheKey("a") == cacheKey("b") {
		t.Error("different prompts must not collide")
	}
}
