package health

import (
	"net/http"
	"runtime"
	"time"

	chatService "miamiam-bot/internal/core/chat"
	menuService "miamiam-bot/internal/core/menu"
	"miamiam-bot/internal/infrastructure/config"
	"miamiam-bot/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HealthResponse 健康檢查響應
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Runtime   map[string]interface{} `json:"runtime"`
	Menu      *MenuStatus            `json:"menu,omitempty"`
	Sessions  *SessionStatus         `json:"sessions,omitempty"`
	Cache     map[string]interface{} `json:"cache,omitempty"`
}

// MenuStatus 菜單狀態
type MenuStatus struct {
	Restaurants int `json:"restaurants"`
	Items       int `json:"items"`
}

// SessionStatus 對話狀態
type SessionStatus struct {
	Active int `json:"active"`
}

// Handler 健康檢查處理器
type Handler struct {
	config   *config.Config
	catalog  *menuService.Catalog
	sessions *chatService.SessionStore
	stats    func() map[string]interface{}
}

// NewHandler 創建健康檢查處理器，stats 可為 nil（緩存未啟用）
func NewHandler(cfg *config.Config, catalog *menuService.Catalog, sessions *chatService.SessionStore, stats func() map[string]interface{}) *Handler {
	return &Handler{
		config:   cfg,
		catalog:  catalog,
		sessions: sessions,
		stats:    stats,
	}
}

// HealthCheck 健康檢查處理器
func (h *Handler) HealthCheck(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	response := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
		Version:   h.config.App.Version,
		Runtime: map[string]interface{}{
			"goroutines": runtime.NumGoroutine(),
			"memory": map[string]interface{}{
				"alloc":       m.Alloc,
				"total_alloc": m.TotalAlloc,
				"sys":         m.Sys,
				"num_gc":      m.NumGC,
			},
		},
	}

	if h.catalog != nil {
		response.Menu = &MenuStatus{
			Restaurants: len(h.catalog.Restaurants()),
			Items:       h.catalog.Size(),
		}
	}
	if h.sessions != nil {
		response.Sessions = &SessionStatus{Active: h.sessions.Len()}
	}
	if h.stats != nil {
		response.Cache = h.stats()
	}

	common.LogDebug("Health check request",
		zap.String("client_ip", c.ClientIP()),
		zap.String("path", c.Request.URL.Path),
	)

	c.JSON(http.StatusOK, response)
}

// ReadinessCheck 就緒檢查處理器：菜單載入完成才算就緒
func (h *Handler) ReadinessCheck(c *gin.Context) {
	if h.catalog == nil || h.catalog.Size() == 0 {
		c.JSON(common.ErrMenuNotLoaded.Status, gin.H{
			"status": "not_ready",
			"error":  common.ErrMenuNotLoaded.Message,
			"code":   common.ErrMenuNotLoaded.Code,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
	})
}

// LivenessCheck 存活檢查處理器
func LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}
