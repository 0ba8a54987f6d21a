package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/PotterFan92/wizard-duels-backend/api"
	"github.com/PotterFan92/wizard-duels-backend/internal/platform/config"
	"github.com/PotterFan92/wizard-duels-backend/internal/platform/database"
	"github.com/PotterFan92/wizard-duels-backend/internal/platform/health"
	"github.com/PotterFan92/wizard-duels-backend/internal/platform/shutdown"
	"github.com/PotterFan92/wizard-duels-backend/internal/platform/startup"
	"github.com/PotterFan92/wizard-duels-backend/internal/twitch"
	"github.com/PotterFan92/wizard-duels-backend/pkg/lifecycle"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env用于开发环境注入密钥，缺失时忽略
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("无法加载配置: %v", err))
	}

	if err := database.InitDB(cfg.Database.Sqlite); err != nil {
		panic(fmt.Sprintf("数据库初始化失败: %v", err))
	}
	// Redis只承载派生数据，连接失败以降级模式继续运行
	if err := database.InitRedis(cfg.Database.Redis); err != nil {
		fmt.Printf("警告: %v，缓存功能已降级。\n", err)
		database.RDB = nil
		health.SetRedisDegraded(true)
	}

	if err := startup.InitializeApplication(cfg); err != nil {
		panic(fmt.Sprintf("应用初始化失败，无法启动: %v", err))
	}

	// 后台服务：聊天播报工作者与Redis健康检查器
	manager := lifecycle.NewManager()
	announcerHandle, err := manager.NewServiceHandle("chat-announcer")
	if err != nil {
		panic(err)
	}
	go twitch.StartAnnouncer(announcerHandle)
	if database.RDB != nil {
		health.PerformCheck()
		checkerHandle, err := manager.NewServiceHandle("redis-health-checker")
		if err != nil {
			panic(err)
		}
		go health.StartRedisHealthCheck(checkerHandle)
	}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.Cors.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api.SetupRoutes(r)

	address := cfg.Server.Address
	if address == "" {
		address = ":8080"
	}
	server := &http.Server{
		Addr:    address,
		Handler: r,
	}

	go func() {
		fmt.Printf("服务器已准备就绪，开始监听 %s\n", address)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic("Failed to start server: " + err.Error())
		}
	}()

	coordinator := shutdown.NewCoordinator(manager)
	coordinator.ListenForSignalsAndShutdown(server)
}
