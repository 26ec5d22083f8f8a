package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"miamiam-bot/internal/api"
	"miamiam-bot/internal/core/ai/cache"
	chatService "miamiam-bot/internal/core/chat"
	menuService "miamiam-bot/internal/core/menu"
	"miamiam-bot/internal/infrastructure/config"
	"miamiam-bot/internal/pkg/common"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 載入 .env
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found")
	}

	// 載入設定
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 初始化 logger（需在載入 config 後）
	if err := common.InitLogger(cfg.LogLevel); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	common.LogInfo("載入設定",
		zap.String("menu_path", cfg.Menu.Path),
		zap.String("openrouter_model", cfg.OpenRouter.Model),
		zap.Bool("openrouter_enabled", cfg.OpenRouter.Enabled),
	)

	// 載入菜單，失敗就不啟動
	catalog, err := menuService.Load(cfg.Menu.Path)
	if err != nil {
		common.LogFatal("Failed to load menu",
			zap.Error(err),
			zap.String("path", cfg.Menu.Path),
		)
	}

	// 初始化快取
	store, err := cache.New(cfg)
	if err != nil {
		common.LogFatal("Failed to initialize cache", zap.Error(err))
	}

	// 初始化對話狀態存放處
	sessions := chatService.NewSessionStore(cfg.Session.TTL, cfg.Session.CleanupInterval)
	defer sessions.Close()

	// 設置路由
	router, err := api.SetupRouter(cfg, catalog, sessions, store)
	if err != nil {
		common.LogError("Failed to setup router", zap.Error(err))
		os.Exit(1)
	}

	// 設置 HTTP 服務器
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// 啟動服務器
	go func() {
		common.LogInfo("啟動應用",
			zap.String("version", cfg.App.Version),
			zap.String("env", cfg.App.Env),
			zap.Bool("debug", cfg.App.Debug),
			zap.Int("port", cfg.Server.Port),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			common.LogError("Failed to start server",
				zap.Error(err),
			)
			os.Exit(1)
		}
	}()

	// 等待中斷信號
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	common.LogInfo("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		common.LogError("Server forced to shutdown",
			zap.Error(err),
		)
		os.Exit(1)
	}

	if store != nil {
		if err := store.Close(); err != nil {
			common.LogError("Failed to close cache", zap.Error(err))
		}
	}

	common.LogInfo("Server exited")
}
