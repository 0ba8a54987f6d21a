package twitch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrDuplicateMessage 表示该消息ID已经被处理过，本次投递是重放
var ErrDuplicateMessage = errors.New("webhook message already processed")

// WebhookMessage 记录了已处理的EventSub消息ID。
// MessageID主键上的唯一约束是防重放的最终依据，
// 写入与事件追加、排行榜更新处于同一个事务。
type WebhookMessage struct {
	MessageID string `gorm:"primaryKey;type:varchar(64)"`
	CreatedAt time.Time
}

// markMessageTx 在对决事务内登记一条消息ID。
// 该ID已存在时返回ErrDuplicateMessage，整个事务随之回滚，
// 重放的通知不会产生任何状态变化。
func markMessageTx(tx *gorm.DB, messageID string) error {
	result := tx.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&WebhookMessage{MessageID: messageID})
	if result.Error != nil {
		return fmt.Errorf("无法登记webhook消息ID: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrDuplicateMessage
	}
	return nil
}

const (
	// seenKeyPrefix 是Redis快速路径键的前缀
	seenKeyPrefix = "twitch:webhook:seen:"
	// seenTTL 覆盖Twitch的重试窗口即可
	seenTTL = 10 * time.Minute
)

var replayCtx = context.Background()

// seenRecently 查询Redis快速路径：该消息是否刚刚成功处理过。
// 只做读取，Redis不可用时返回false，交给数据库约束兜底。
func seenRecently(rdb *redis.Client, messageID string) bool {
	if rdb == nil {
		return false
	}
	n, err := rdb.Exists(replayCtx, seenKeyPrefix+messageID).Result()
	if err != nil {
		return false
	}
	return n > 0
}

// rememberProcessed 在事务成功提交后把消息ID写入快速路径。
// 必须在提交之后调用：提交失败时Twitch会重试，
// 重试不能被快速路径拦下。
func rememberProcessed(rdb *redis.Client, messageID string) {
	if rdb == nil {
		return
	}
	if err := rdb.Set(replayCtx, seenKeyPrefix+messageID, 1, seenTTL).Err(); err != nil {
		fmt.Printf("警告: webhook消息快速路径写入失败: %v\n", err)
	}
}
