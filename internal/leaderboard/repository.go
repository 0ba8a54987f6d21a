package leaderboard

import (
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// upsertParticipantTx 在给定事务内为单个参与者应用一次原子的create-or-increment。
// 首次出现的用户直接以本次增量建行，已有用户在存储层原子累加，
// 不做任何先读后写，两个并发事件不会互相丢失更新。
func upsertParticipantTx(tx *gorm.DB, userID, username string, won, lost bool) error {
	wins, losses := 0, 0
	if won {
		wins = 1
	}
	if lost {
		losses = 1
	}

	entry := Entry{
		UserID:   userID,
		Username: username,
		Wins:     wins,
		Losses:   losses,
		Casts:    1,
	}

	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"casts":      gorm.Expr("casts + 1"),
			"wins":       gorm.Expr("wins + ?", wins),
			"losses":     gorm.Expr("losses + ?", losses),
			"username":   username,
			"updated_at": time.Now(),
		}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("无法更新用户 %s 的排行榜条目: %w", userID, err)
	}
	return nil
}

// TopN 按获胜场次降序返回前N名，同分时按用户名升序保证结果确定。
// 排名即返回切片中的位置，不依赖任何持久化的rank列。
func TopN(db *gorm.DB, n int) ([]Entry, error) {
	var entries []Entry
	err := db.Order("wins desc, username asc").Limit(n).Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("无法读取排行榜: %w", err)
	}
	return entries, nil
}

// GetEntry 按用户ID读取单个条目，主要供测试和报表使用
func GetEntry(db *gorm.DB, userID string) (*Entry, error) {
	var entry Entry
	if err := db.Where("user_id = ?", userID).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}
