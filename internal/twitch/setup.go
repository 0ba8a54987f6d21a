package twitch

import (
	"errors"
	"fmt"

	"github.com/PotterFan92/wizard-duels-backend/internal/duel"
	"github.com/PotterFan92/wizard-duels-backend/internal/platform/config"
	"github.com/nicklaw5/helix/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

var (
	globalCfg     config.TwitchConfig
	globalRDB     *redis.Client
	globalService *duel.Service
)

// PrimeModule 负责迁移twitch模块的数据库表结构
func PrimeModule(db *gorm.DB) error {
	if err := db.AutoMigrate(&WebhookMessage{}); err != nil {
		return fmt.Errorf("无法迁移webhook_messages表: %w", err)
	}
	return nil
}

// ConfigureModule 注入twitch模块的依赖。
// WebhookSecret缺失时拒绝启动：没有密钥就无法校验任何入站通知。
// 出站功能（订阅引导、聊天播报）只在配置了应用凭据时启用。
func ConfigureModule(cfg config.TwitchConfig, rdb *redis.Client, service *duel.Service) error {
	if cfg.WebhookSecret == "" {
		return errors.New("twitch.webhookSecret 未配置，无法校验EventSub签名")
	}
	globalCfg = cfg
	globalRDB = rdb
	globalService = service

	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		fmt.Println("未配置Twitch应用凭据，出站功能已禁用。")
		return nil
	}

	client, err := helix.NewClient(&helix.Options{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
	})
	if err != nil {
		return fmt.Errorf("无法创建Twitch客户端: %w", err)
	}
	configureAnnouncer(client, cfg.BroadcasterID, cfg.BotUserID)

	if cfg.SubscribeOnStartup {
		if err := EnsureSubscription(client, cfg.BroadcasterID, cfg.CallbackURL, cfg.WebhookSecret); err != nil {
			// 订阅引导失败不阻止启动，Webhook本身仍可正常接收
			fmt.Printf("警告: EventSub订阅引导失败: %v\n", err)
		}
	}
	return nil
}
