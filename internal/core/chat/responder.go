package chat

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"miamiam-bot/internal/core/menu"
	"miamiam-bot/internal/pkg/common"

	"go.uber.org/zap"
)

// chatFallbackPrompt 閒聊後備模型的人設包裝
const chatFallbackPrompt = `You are Miammiam, a funny foodie bot who chats with users. They said: "%s". Respond like a helpful, humorous food-lover assistant.`

// AIService 閒聊後備模型的呼叫介面，只在 Fallback 分支使用
type AIService interface {
	ProcessRequest(ctx context.Context, prompt string) (string, error)
}

// Responder 對話核心：一則訊息進、一段回覆文字出。
// 對話狀態的鎖在這裡取得，一個回合從頭到尾持有。
type Responder struct {
	catalog *menu.Catalog
	ai      AIService

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewResponder 建立對話核心，rng 由呼叫端注入以便測試時固定種子
func NewResponder(catalog *menu.Catalog, ai AIService, rng *rand.Rand) *Responder {
	return &Responder{
		catalog: catalog,
		ai:      ai,
		rng:     rng,
	}
}

// intn 隨機數需要上鎖：rand.Rand 不允許並行使用，
// 而不同對話的回合可能同時進行
func (r *Responder) intn(n int) int {
	r.rngMu.Lock()
	defer r.rngMu.Unlock()
	return r.rng.Intn(n)
}

func (r *Responder) perm(n int) []int {
	r.rngMu.Lock()
	defer r.rngMu.Unlock()
	return r.rng.Perm(n)
}

func (r *Responder) shuffledPlan(prefs Preferences, days int) ([]PlanEntry, float64) {
	r.rngMu.Lock()
	defer r.rngMu.Unlock()
	return GenerateMealPlan(r.catalog, prefs, days, r.rng)
}

// GenerateResponse 處理一則使用者訊息並回傳顯示文字。
// 意圖優先序固定：重置 > 天數計畫 > 餐數計畫 > 食物請求 >
// 追加推薦 > 閒聊後備，每則訊息恰好走一條分支。
func (r *Responder) GenerateResponse(ctx context.Context, s *Session, message string) string {
	s.Lock()
	defer s.Unlock()

	if IsResetRequest(message) {
		s.Reset()
		common.LogInfo("對話已重置", zap.String("conversation_id", s.ID))
		return resetText
	}

	prefs := Extract(message)

	if days, ok := PlanDays(message); ok {
		return r.handleDayPlan(s, prefs, days)
	}

	if count, ok := prefs.Int(KeyMealPlanCount); ok {
		return r.handleMealCountPlan(s, prefs, count)
	}

	if IsFoodRequest(message) {
		return r.handleFoodRequest(s, prefs)
	}

	if IsFollowUpRequest(message) {
		return r.handleFollowUp(s)
	}

	return r.handleFallbackChat(ctx, message)
}

// handleDayPlan N 天計畫：計畫一律排除飲料與甜食
func (r *Responder) handleDayPlan(s *Session, prefs Preferences, days int) string {
	prefs[KeyNotDrink] = true
	prefs["not sweet"] = true

	s.Update(prefs)
	entries, total := r.shuffledPlan(s.Context, days)

	common.LogInfo("產生餐點計畫",
		zap.String("conversation_id", s.ID),
		zap.Int("days", days),
		zap.Float64("total", total),
	)

	return formatPlan(entries, total, days)
}

// handleMealCountPlan N 餐計畫：從候選中不重複抽 N 個
func (r *Responder) handleMealCountPlan(s *Session, prefs Preferences, count int) string {
	prefs[KeyNotDrink] = true
	prefs["not sweet"] = true

	s.Update(prefs)
	matches := Rank(r.catalog, s.Context)

	n := count
	if len(matches) < n {
		n = len(matches)
	}

	meals := make([]Candidate, 0, n)
	for _, idx := range r.perm(len(matches))[:n] {
		meals = append(meals, matches[idx])
	}

	return formatMealCountPlan(meals)
}

// handleFoodRequest 一般食物請求：合併偏好後過濾排序，
// cheapest 不進入對話狀態，從本回合偏好直接帶入
func (r *Responder) handleFoodRequest(s *Session, prefs Preferences) string {
	s.Update(prefs)

	effective := s.Context.Clone()
	if prefs.Bool(KeyCheapest) {
		effective[KeyCheapest] = true
	}
	s.LastPreferences = effective

	matches := Rank(r.catalog, effective)
	if len(matches) == 0 {
		return noMatchText
	}

	var pick Candidate
	if effective.Bool(KeyCheapest) {
		// cheapest 模式下排序已是價格由低到高，直接取第一個
		pick = matches[0]
	} else {
		pick = matches[r.intn(len(matches))]
	}

	s.LastSuggestion = &Suggestion{Restaurant: pick.Restaurant, Item: pick.Item}

	common.LogInfo("產生推薦",
		zap.String("conversation_id", s.ID),
		zap.String("item", pick.Item.Name),
		zap.String("restaurant", pick.Restaurant),
		zap.Int("candidates", len(matches)),
	)

	return formatSuggestion(pick.Restaurant, pick.Item)
}

// handleFollowUp 追加推薦：沿用上次的偏好，排除上次推薦的品項
func (r *Responder) handleFollowUp(s *Session) string {
	if s.LastSuggestion == nil {
		return noSuggestionText
	}

	var matches []Candidate
	for _, c := range Rank(r.catalog, s.LastPreferences) {
		if c.Restaurant == s.LastSuggestion.Restaurant && c.Item.Name == s.LastSuggestion.Item.Name {
			continue
		}
		matches = append(matches, c)
	}
	if len(matches) == 0 {
		return noMoreText
	}

	pick := matches[r.intn(len(matches))]
	s.LastSuggestion = &Suggestion{Restaurant: pick.Restaurant, Item: pick.Item}

	return formatAnotherSuggestion(pick.Restaurant, pick.Item)
}

// handleFallbackChat 閒聊後備：交給外部生成模型，
// 失敗時回固定文案而不是把錯誤丟給使用者
func (r *Responder) handleFallbackChat(ctx context.Context, message string) string {
	if r.ai == nil {
		return chatOfflineText
	}

	prompt := fmt.Sprintf(chatFallbackPrompt, message)
	reply, err := r.ai.ProcessRequest(ctx, prompt)
	if err != nil {
		common.LogError("閒聊後備模型呼叫失敗", zap.Error(err))
		return chatOfflineText
	}
	return reply
}
