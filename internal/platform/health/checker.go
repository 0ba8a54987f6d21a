package health

import (
	"fmt"
	"time"

	"github.com/PotterFan92/wizard-duels-backend/internal/platform/database"
	"github.com/PotterFan92/wizard-duels-backend/pkg/lifecycle"
)

// checkInterval 是后台健康检查的周期
const checkInterval = 30 * time.Second

// PerformCheck 执行一次Redis可用性检查并更新降级标记
func PerformCheck() {
	if database.RDB == nil {
		SetRedisDegraded(true)
		return
	}
	if err := database.RDB.Ping(database.Ctx).Err(); err != nil {
		if !redisDegraded.Load() {
			fmt.Printf("警告: Redis健康检查失败: %v\n", err)
		}
		SetRedisDegraded(true)
		return
	}
	if redisDegraded.Load() {
		fmt.Println("Redis已恢复。")
	}
	SetRedisDegraded(false)
}

// StartRedisHealthCheck 周期性检查Redis可用性，直到收到停机信号
func StartRedisHealthCheck(handle *lifecycle.Handle) {
	defer handle.Close()

	ticker := time.NewTicker(checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-handle.Done():
			return
		case <-ticker.C:
			PerformCheck()
		}
	}
}
