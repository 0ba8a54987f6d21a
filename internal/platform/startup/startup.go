package startup

import (
	"fmt"

	"github.com/PotterFan92/wizard-duels-backend/internal/duel"
	"github.com/PotterFan92/wizard-duels-backend/internal/leaderboard"
	"github.com/PotterFan92/wizard-duels-backend/internal/platform/config"
	"github.com/PotterFan92/wizard-duels-backend/internal/platform/database"
	"github.com/PotterFan92/wizard-duels-backend/internal/spell"
	"github.com/PotterFan92/wizard-duels-backend/internal/twitch"
)

// InitializeApplication 是应用首次启动时执行的总入口。
// 按叶子优先的顺序迁移各模块的表结构并完成依赖装配。
func InitializeApplication(cfg *config.Config) error {
	fmt.Println("开始应用初始化...")

	db := database.DB

	if err := spell.PrimeModule(db); err != nil {
		return err
	}
	if err := duel.PrimeModule(db); err != nil {
		return err
	}
	if err := leaderboard.PrimeModule(db); err != nil {
		return err
	}
	if err := twitch.PrimeModule(db); err != nil {
		return err
	}

	// 依赖装配：排行榜聚合器作为StatsApplier注入摄入服务
	var cache *leaderboard.TopCache
	if database.RDB != nil {
		cache = leaderboard.NewTopCache(database.RDB)
	}
	statsService := leaderboard.NewService(db, cache)
	duelService := duel.NewService(db, statsService)

	leaderboard.ConfigureModule(statsService)
	duel.ConfigureModule(db, duelService)
	if err := twitch.ConfigureModule(cfg.Twitch, database.RDB, duelService); err != nil {
		return err
	}

	fmt.Println("应用初始化完成！")
	return nil
}
