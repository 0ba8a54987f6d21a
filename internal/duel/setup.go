package duel

import (
	"fmt"

	"gorm.io/gorm"
)

// PrimeModule 负责迁移duel模块的数据库表结构
func PrimeModule(db *gorm.DB) error {
	if err := db.AutoMigrate(&GameEvent{}); err != nil {
		return fmt.Errorf("无法迁移game_events表: %w", err)
	}
	return nil
}
