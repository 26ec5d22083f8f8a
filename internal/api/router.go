package api

import (
	"context"
	"math/rand"
	"net/http"
	"time"

	chatHandler "miamiam-bot/internal/api/handlers/chat"
	"miamiam-bot/internal/api/handlers/health"
	menuHandler "miamiam-bot/internal/api/handlers/menu"
	"miamiam-bot/internal/api/middleware"
	"miamiam-bot/internal/core/ai/cache"
	"miamiam-bot/internal/core/ai/service"
	chatService "miamiam-bot/internal/core/chat"
	menuService "miamiam-bot/internal/core/menu"
	"miamiam-bot/internal/infrastructure/config"
	"miamiam-bot/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// 超時設置
	timeoutDuration = 60 * time.Second
	// 請求體大小限制 (64KB，純文字訊息用不到更多)
	maxBodySize = 64 << 10
)

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, catalog *menuService.Catalog, sessions *chatService.SessionStore, store cache.Store) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.BodySizeLimit(maxBodySize))
	router.Use(middleware.Deduplication(cfg))
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}

	common.LogInfo("Initializing services",
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.Bool("openrouter_enabled", cfg.OpenRouter.Enabled),
		zap.String("model", cfg.OpenRouter.Model),
		zap.Int("menu_items", catalog.Size()),
	)

	aiService := service.NewService(cfg, store)
	responder := chatService.NewResponder(catalog, aiService, rand.New(rand.NewSource(time.Now().UnixNano())))

	// 請求超時
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", requestid.Get(c)),
				zap.Duration("timeout", timeoutDuration),
			)
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
				"code":  common.ErrCodeGatewayTimeout,
			})
			c.Abort()
		}
	})

	// 健康檢查路由
	healthHandlerInstance := health.NewHandler(cfg, catalog, sessions, aiService.Stats)
	router.GET("/health", healthHandlerInstance.HealthCheck)
	router.GET("/ready", healthHandlerInstance.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	// API 路由組
	api := router.Group("/api/v1")
	{
		chatHandlerInstance := chatHandler.NewHandler(sessions, responder)
		menuHandlerInstance := menuHandler.NewHandler(catalog)

		chatGroup := api.Group("/chat")
		{
			chatGroup.GET("/start", chatHandlerInstance.HandleStart)
			chatGroup.POST("/message", chatHandlerInstance.HandleMessage)
			chatGroup.POST("/reset", chatHandlerInstance.HandleReset)
		}

		api.GET("/menu", menuHandlerInstance.HandleList)
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}
