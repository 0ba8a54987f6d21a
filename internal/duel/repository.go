package duel

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNoEvents 表示events表中还没有任何记录
var ErrNoEvents = errors.New("no events recorded yet")

// appendEventTx 在给定事务内追加一条对决记录。
// 调用方负责事务的提交与回滚。
func appendEventTx(tx *gorm.DB, event *GameEvent) error {
	if err := tx.Create(event).Error; err != nil {
		return fmt.Errorf("无法写入对决记录: %w", err)
	}
	return nil
}

// LatestEvent 返回最近创建的一条对决记录。
// 表为空时返回ErrNoEvents，供上层决定响应形态。
func LatestEvent(db *gorm.DB) (*GameEvent, error) {
	var event GameEvent
	err := db.Order("created_at desc, id desc").First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoEvents
		}
		return nil, fmt.Errorf("无法读取最新对决记录: %w", err)
	}
	return &event, nil
}
