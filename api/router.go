package api

import (
	"github.com/PotterFan92/wizard-duels-backend/internal/duel"
	"github.com/PotterFan92/wizard-duels-backend/internal/leaderboard"
	"github.com/PotterFan92/wizard-duels-backend/internal/platform/health"
	"github.com/PotterFan92/wizard-duels-backend/internal/spell"
	"github.com/PotterFan92/wizard-duels-backend/internal/twitch"
	"github.com/gin-gonic/gin"
)

// SetupRoutes 注册项目的所有API路由
func SetupRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		api.GET("/health", health.HandleHealthCheck)
		api.GET("/leaderboard", leaderboard.GetLeaderboard)
		api.GET("/spells", spell.GetCatalog)

		// 对决事件相关的路由
		eventRoutes := api.Group("/events")
		{
			eventRoutes.POST("/record", duel.RecordEvent)
			eventRoutes.GET("/latest", duel.GetLatestEvent)
		}

		// 旧版控制台使用的别名路由
		api.POST("/spells/cast", duel.RecordEvent)

		// Twitch EventSub回调
		api.POST("/twitch/webhook", twitch.HandleWebhook)
	}
}
