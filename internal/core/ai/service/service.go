package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"miamiam-bot/internal/core/ai/cache"
	"miamiam-bot/internal/core/ai/openrouter"
	"miamiam-bot/internal/infrastructure/config"
	"miamiam-bot/internal/pkg/common"
)

// Service 閒聊後備服務：緩存在前、OpenRouter 在後
type Service struct {
	config     *config.Config
	openRouter *openrouter.Client
	cache      cache.Store

	mu          sync.Mutex
	lastRequest time.Time
}

// NewService 創建閒聊後備服務，cache 可為 nil（不啟用緩存）
func NewService(cfg *config.Config, store cache.Store) *Service {
	return &Service{
		config:     cfg,
		openRouter: openrouter.NewClient(cfg),
		cache:      store,
	}
}

// ProcessRequest 處理一次 prompt：先查緩存，未命中再呼叫模型
func (s *Service) ProcessRequest(ctx context.Context, prompt string) (string, error) {
	if !s.config.OpenRouter.Enabled || s.config.OpenRouter.APIKey == "" {
		return "", common.ErrAIServiceError
	}

	if err := s.checkRequestRate(); err != nil {
		return "", err
	}

	// 統一 prompt 格式：去除前後空白、連續空白合併為一格，
	// 確保快取鍵一致
	prompt = strings.TrimSpace(prompt)
	prompt = strings.Join(strings.Fields(prompt), " ")

	if s.cache != nil {
		if value, err := s.cache.Get(ctx, prompt); err == nil && value != "" {
			return value, nil
		}
	}

	start := time.Now()
	content, err := s.openRouter.Generate(ctx, prompt)
	common.LogAICall(prompt, time.Since(start), err, "")
	if err != nil {
		return "", err
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, prompt, content)
	}

	return content, nil
}

// Stats 回傳緩存統計，緩存未啟用時回傳 nil
func (s *Service) Stats() map[string]interface{} {
	if s.cache == nil {
		return nil
	}
	return s.cache.Stats()
}

// Close 關閉下游資源
func (s *Service) Close() error {
	if s.cache != nil {
		if err := s.cache.Close(); err != nil {
			return err
		}
	}
	return s.openRouter.Close()
}

// checkRequestRate 檢查對模型的請求頻率，
// 最小間隔為限流視窗除以視窗內允許的請求數
func (s *Service) checkRequestRate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.config.RateLimit.Enabled || s.config.RateLimit.Requests <= 0 {
		s.lastRequest = time.Now()
		return nil
	}

	now := time.Now()
	minInterval := s.config.RateLimit.Window / time.Duration(s.config.RateLimit.Requests)
	if now.Sub(s.lastRequest) < minInterval {
		return errors.New("request rate limit exceeded")
	}

	s.lastRequest = now
	return nil
}
