package twitch

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/PotterFan92/wizard-duels-backend/internal/duel"
	"github.com/PotterFan92/wizard-duels-backend/pkg/signature"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HandleWebhook 处理Twitch EventSub的回调。
// 签名校验在任何解析和状态变更之前完成，校验失败直接403终止。
func HandleWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无法读取请求体"})
		return
	}

	messageID := c.GetHeader(headerMessageID)
	timestamp := c.GetHeader(headerTimestamp)
	claimed := c.GetHeader(headerSignature)

	if !signature.Verify(globalCfg.WebhookSecret, messageID, timestamp, claimed, body) {
		c.JSON(http.StatusForbidden, gin.H{"error": "签名校验失败"})
		return
	}

	switch c.GetHeader(headerMessageType) {
	case messageTypeVerification:
		handleVerification(c, body)
	case messageTypeNotification:
		handleNotification(c, messageID, body)
	case messageTypeRevocation:
		handleRevocation(c, body)
	default:
		// 未知消息类型：确认收到，避免无意义的重试
		c.Status(http.StatusNoContent)
	}
}

// handleVerification 响应订阅握手：原样回显challenge令牌
func handleVerification(c *gin.Context, body []byte) {
	var envelope eventSubEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Challenge == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的握手请求"})
		return
	}
	c.String(http.StatusOK, envelope.Challenge)
}

// handleRevocation 记录订阅被撤销，本身不影响任何状态
func handleRevocation(c *gin.Context, body []byte) {
	var envelope eventSubEnvelope
	_ = json.Unmarshal(body, &envelope)
	fmt.Printf("Twitch撤销了订阅 %s (状态: %s)\n", envelope.Subscription.ID, envelope.Subscription.Status)
	c.Status(http.StatusNoContent)
}

// handleNotification 处理实际的兑换通知并触发一场对决
func handleNotification(c *gin.Context, messageID string, body []byte) {
	var envelope eventSubEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的通知载荷"})
		return
	}

	// 只有积分兑换会触发对决，其余订阅类型确认后忽略
	if envelope.Subscription.Type != eventSubTypeRedemption {
		c.Status(http.StatusNoContent)
		return
	}

	var redemption redemptionEvent
	if err := json.Unmarshal(envelope.Event, &redemption); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的兑换载荷"})
		return
	}

	// 按奖励名称过滤：只有指定的兑换奖励会触发对决
	if globalCfg.RewardTitle != "" && redemption.Reward.Title != globalCfg.RewardTitle {
		c.Status(http.StatusNoContent)
		return
	}

	// Redis快速路径：刚处理过的重放直接确认，不再进入事务
	if seenRecently(globalRDB, messageID) {
		c.Status(http.StatusNoContent)
		return
	}

	event, err := globalService.RecordRedemption(duel.RedemptionInput{
		CasterID:   redemption.UserID,
		CasterName: redemption.UserName,
		TargetName: strings.TrimSpace(redemption.UserInput),
	}, func(tx *gorm.DB) error {
		return markMessageTx(tx, messageID)
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrDuplicateMessage):
			// 重放的通知：确认收到，不产生任何状态
			rememberProcessed(globalRDB, messageID)
			c.Status(http.StatusNoContent)
		case errors.Is(err, duel.ErrValidation):
			// 载荷残缺属于永久性失败，确认收到避免无意义的重试
			fmt.Printf("警告: 兑换事件被拒绝: %v\n", err)
			c.Status(http.StatusNoContent)
		default:
			// 存储故障：整个事务已回滚，让Twitch稍后重试
			fmt.Printf("处理兑换事件失败: %v\n", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "处理兑换事件失败"})
		}
		return
	}

	rememberProcessed(globalRDB, messageID)

	// 聊天播报是旁路副作用，排队失败或发送失败都不影响已入库的对决
	if globalCfg.ChatAnnouncements {
		queueAnnouncement(event.Message)
	}

	c.Status(http.StatusNoContent)
}
