package chat

import (
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"miamiam-bot/internal/core/menu"
	"miamiam-bot/internal/pkg/common"

	"go.uber.org/zap"
)

// exclusiveTagGroups 互斥標籤群組：同一群組內同時間最多一個鍵生效
var exclusiveTagGroups = [][]string{
	{"spicy", "sweet"},
	{"hot", "cold"},
	{"sweet", "salty"},
	{KeyOnlyDrink, KeyNotDrink},
}

// Suggestion 最近一次推薦的（餐廳, 品項）
type Suggestion struct {
	Restaurant string
	Item       menu.MenuItem
}

// Session 單一對話的可變狀態。
// 偏好逐回合累積；同一對話的回合由 mu 序列化。
type Session struct {
	mu sync.Mutex

	ID              string
	Context         Preferences
	LastSuggestion  *Suggestion
	LastPreferences Preferences

	lastSeen int64 // unix nano，atomic 存取
}

// NewSession 建立空白對話狀態
func NewSession(id string) *Session {
	s := &Session{
		ID:      id,
		Context: Preferences{},
	}
	s.touch()
	return s
}

func (s *Session) touch() {
	atomic.StoreInt64(&s.lastSeen, time.Now().UnixNano())
}

// Lock 鎖住對話，一個回合從頭到尾持有
func (s *Session) Lock() {
	s.mu.Lock()
	s.touch()
}

// Unlock 釋放對話鎖
func (s *Session) Unlock() {
	s.mu.Unlock()
}

// Reset 無條件清空累積偏好與最近推薦
func (s *Session) Reset() {
	s.Context = Preferences{}
	s.LastSuggestion = nil
	s.LastPreferences = nil
}

// inExclusiveGroup 檢查鍵是否屬於某個互斥群組
func inExclusiveGroup(key string) bool {
	for _, group := range exclusiveTagGroups {
		for _, t := range group {
			if t == key {
				return true
			}
		}
	}
	return false
}

// Update 將一回合的偏好合併進對話狀態：
//   - 價格上下限無條件覆寫
//   - 互斥群組成員：先移除同群組其他鍵再設定，維持群組內最多一鍵
//   - 否定標籤與 halal/healthy 無條件覆寫
//   - ingredients 在 sweet/dessert 已生效時不合併
//   - 其餘鍵（cheapest、meal_plan_count、tags、after_gym）由呼叫端
//     直接從該回合的 Preferences 讀取，不進入狀態
func (s *Session) Update(prefs Preferences) {
	for key, value := range prefs {
		switch {
		case key == KeyMinPrice || key == KeyMaxPrice:
			s.Context[key] = value

		case inExclusiveGroup(key):
			for _, group := range exclusiveTagGroups {
				if !containsTag(group, key) {
					continue
				}
				for _, t := range group {
					if t != key {
						delete(s.Context, t)
					}
				}
			}
			s.Context[key] = true

		case strings.HasPrefix(key, "not ") || key == "halal" || key == "healthy":
			s.Context[key] = value

		case key == KeyIngredients:
			if s.Context.Bool("sweet") || s.Context.Bool("dessert") {
				continue
			}
			s.Context[key] = value
		}
	}
}

func containsTag(group []string, key string) bool {
	for _, t := range group {
		if t == key {
			return true
		}
	}
	return false
}

// SessionStore 對話狀態的行程內存放處，依對話 ID 查找，
// 逾時未使用的對話由背景協程清除
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	done     chan struct{}
}

// NewSessionStore 建立對話狀態存放處並啟動清理協程
func NewSessionStore(ttl, cleanupInterval time.Duration) *SessionStore {
	st := &SessionStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		done:     make(chan struct{}),
	}

	go st.startCleanup(cleanupInterval)

	common.LogInfo("對話狀態存放處已初始化",
		zap.Duration("存活時間", ttl),
		zap.Duration("清理間隔", cleanupInterval),
	)

	return st
}

// GetOrCreate 依 ID 取得對話，不存在（或 ID 為空）時建立新對話
func (st *SessionStore) GetOrCreate(id string) *Session {
	if id != "" {
		st.mu.RLock()
		s, ok := st.sessions[id]
		st.mu.RUnlock()
		if ok {
			return s
		}
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if id == "" {
		id = common.GenerateUUID()
	}
	if s, ok := st.sessions[id]; ok {
		return s
	}

	s := NewSession(id)
	st.sessions[id] = s

	common.LogInfo("建立新對話",
		zap.String("conversation_id", id),
		zap.Int("active_sessions", len(st.sessions)),
	)

	return s
}

// Get 依 ID 取得對話
func (st *SessionStore) Get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}

// Remove 移除對話
func (st *SessionStore) Remove(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

// Len 回傳目前的對話數
func (st *SessionStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// startCleanup 定期清除逾時未使用的對話
func (st *SessionStore) startCleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			st.cleanup()
		case <-st.done:
			return
		}
	}
}

func (st *SessionStore) cleanup() {
	now := time.Now()
	count := 0

	st.mu.Lock()
	for id, s := range st.sessions {
		if now.Sub(time.Unix(0, atomic.LoadInt64(&s.lastSeen))) > st.ttl {
			delete(st.sessions, id)
			count++
		}
	}
	remaining := len(st.sessions)
	st.mu.Unlock()

	if count > 0 {
		common.LogInfo("清除逾時對話",
			zap.Int("count", count),
			zap.Int("remaining", remaining),
		)
	}
}

// Close 停止清理協程
func (st *SessionStore) Close() {
	close(st.done)
}
