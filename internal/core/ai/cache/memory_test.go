package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"miamiam-bot/internal/infrastructure/config"
)

func newTestStore(t *testing.T, maxSize int) *memoryStore {
	t.Helper()
	m := newMemoryStore(&config.CacheConfig{
		Enabled:         true,
		Driver:          "memory",
		MaxSize:         maxSize,
		TTL:             time.Hour,
		CleanupInterval: time.Hour,
	})
	t.Cleanup(func() { m.Close() })
	return m
}

func TestMemoryStoreSetGet(t *testing.T) {
	m := newTestStore(t, 10)
	ctx := context.Background()

	if err := m.Set(ctx, "hello", "world"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	value, err := m.Get(ctx, "hello")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if value != "world" {
		t.Errorf("Get() = %q, want %q", value, "world")
	}
}

func TestMemoryStoreMiss(t *testing.T) {
	m := newTestStore(t, 10)

	if _, err := m.Get(context.Background(), "absent"); err == nil {
		t.Fatal("Get() expected error on miss")
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	m := newMemoryStore(&config.CacheConfig{
		Enabled:         true,
		Driver:          "memory",
		MaxSize:         10,
		TTL:             -time.Second, // 寫入即逾時
		CleanupInterval: time.Hour,
	})
	defer m.Close()
	ctx := context.Background()

	if err := m.Set(ctx, "hello", "world"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if _, err := m.Get(ctx, "hello"); err == nil {
		t.Fatal("Get() expected error for expired entry")
	}
}

func TestMemoryStoreEvictsLRU(t *testing.T) {
	m := newTestStore(t, 2)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := m.Set(ctx, fmt.Sprintf("prompt-%d", i), "reply"); err != nil {
			t.Fatalf("Set(%d) error: %v", i, err)
		}
	}

	stats := m.Stats()
	if size := stats["size"].(int); size > 2 {
		t.Errorf("size = %d, want at most 2", size)
	}
	if stats["evictions"].(int64) == 0 {
		t.Error("expected at least one eviction")
	}
}

func TestMemoryStoreStats(t *testing.T) {
	m := newTestStore(t, 10)
	ctx := context.Background()

	m.Set(ctx, "a", "1")
	m.Get(ctx, "a")
	m.Get(ctx, "b")

	stats := m.Stats()
	if stats["hits"].(int64) != 1 {
		t.Errorf("hits = %v, want 1", stats["hits"])
	}
	if stats["misses"].(int64) != 1 {
		t.Errorf("misses = %v, want 1", stats["misses"])
	}
	if stats["hit_ratio"].(float64) != 0.5 {
		t.Errorf("hit_ratio = %v, want 0.5", stats["hit_ratio"])
	}
}
