package database

import (
	"context"
	"fmt"

	"github.com/PotterFan92/wizard-duels-backend/internal/platform/config"
	"github.com/redis/go-redis/v9"
)

// RDB 是全局的Redis客户端实例。
// Redis在本项目中只承载派生数据（排行榜缓存、webhook快速路径），
// 连接失败不阻止启动，相关功能会自动退化到数据库。
var RDB *redis.Client

// Ctx 是一个全局的上下文，用于Redis操作
var Ctx = context.Background()

// InitRedis 初始化与Redis的连接。
// 返回的错误仅用于日志，调用方可以选择继续以降级模式运行。
func InitRedis(cfg config.RedisConfig) error {
	RDB = redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if _, err := RDB.Ping(Ctx).Result(); err != nil {
		return fmt.Errorf("无法连接到Redis: %w", err)
	}

	fmt.Println("Redis 连接成功！")
	return nil
}
