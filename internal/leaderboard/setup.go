package leaderboard

import (
	"fmt"

	"gorm.io/gorm"
)

// PrimeModule 负责迁移leaderboard模块的数据库表结构。
// user_id主键带来的唯一约束是原子upsert的前提。
func PrimeModule(db *gorm.DB) error {
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return fmt.Errorf("无法迁移leaderboard表: %w", err)
	}
	return nil
}
