package service

import (
	"context"
	"testing"
	"time"

	"miamiam-bot/internal/infrastructure/config"
)

func TestProcessRequestDisabled(t *testing.T) {
	svc := NewService(&config.Config{
		OpenRouter: config.OpenRouterConfig{Enabled: false},
	}, nil)

	if _, err := svc.ProcessRequest(context.Background(), "hello"); err == nil {
		t.Fatal("expected error when the model is disabled")
	}
}

func TestProcessRequestMissingAPIKey(t *testing.T) {
	svc := NewService(&config.Config{
		OpenRouter: config.OpenRouterConfig{Enabled: true, APIKey: ""},
	}, nil)

	if _, err := svc.ProcessRequest(context.Background(), "hello"); err == nil {
		t.Fatal("expected error when the API key is missing")
	}
}

func TestCheckRequestRate(t *testing.T) {
	svc := NewService(&config.Config{
		RateLimit: config.RateLimitConfig{
			Enabled:  true,
			Requests: 1,
			Window:   time.Hour,
		},
	}, nil)

	if err := svc.checkRequestRate(); err != nil {
		t.Fatalf("first request should pass: %v", err)
	}
	if err := svc.checkRequestRate(); err == nil {
		t.Fatal("second request inside the window should be rejected")
	}
}

func TestStatsWithoutCache(t *testing.T) {
	svc := NewService(&config.Config{}, nil)
	if svc.Stats() != nil {
		t.Error("Stats() should be nil without a cache")
	}
}
