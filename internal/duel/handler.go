package duel

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var (
	globalDB      *gorm.DB
	globalService *Service
)

// ConfigureModule 注入handler所需的依赖，应在路由注册前调用一次
func ConfigureModule(db *gorm.DB, service *Service) {
	globalDB = db
	globalService = service
}

// RecordEventRequestBody 定义了控制台手动触发对决时请求体的JSON结构。
// winner和result字段为兼容旧控制台而保留，服务端会忽略它们并自行推导结果。
type RecordEventRequestBody struct {
	CasterID    string `json:"caster_id" binding:"required"`
	CasterName  string `json:"caster_name" binding:"required"`
	TargetID    string `json:"target_id"`
	TargetName  string `json:"target_name"`
	CasterSpell string `json:"caster_spell" binding:"required"`
	TargetSpell string `json:"target_spell"`
	Winner      string `json:"winner"`
	Result      string `json:"result"`
}

// EventResponse 是对决事件的API响应模型
type EventResponse struct {
	ID          string    `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	CasterID    string    `json:"caster_id"`
	CasterName  string    `json:"caster_name"`
	TargetID    string    `json:"target_id,omitempty"`
	TargetName  string    `json:"target_name"`
	CasterSpell string    `json:"caster_spell"`
	TargetSpell string    `json:"target_spell,omitempty"`
	Outcome     Outcome   `json:"outcome"`
	WinnerName  string    `json:"winner_name,omitempty"`
	Message     string    `json:"message"`
}

// formatEvent 把持久化模型转换为API响应模型
func formatEvent(event *GameEvent) EventResponse {
	return EventResponse{
		ID:          event.EventID,
		CreatedAt:   event.CreatedAt,
		CasterID:    event.CasterID,
		CasterName:  event.CasterName,
		TargetID:    event.TargetID,
		TargetName:  event.TargetName,
		CasterSpell: event.CasterSpell,
		TargetSpell: event.TargetSpell,
		Outcome:     event.Outcome,
		WinnerName:  event.WinnerName,
		Message:     event.Message,
	}
}

// RecordEvent 处理控制台手动触发的对决
func RecordEvent(c *gin.Context) {
	var body RecordEventRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误: " + err.Error()})
		return
	}

	event, err := globalService.RecordManualCast(ManualCastInput{
		CasterID:      body.CasterID,
		CasterName:    body.CasterName,
		TargetID:      body.TargetID,
		TargetName:    body.TargetName,
		CasterSpellID: body.CasterSpell,
		TargetSpellID: body.TargetSpell,
	})
	if err != nil {
		if errors.Is(err, ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "记录对决失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "event": formatEvent(event)})
}

// GetLatestEvent 返回最近一条对决记录，供弹窗轮询使用。
// 还没有任何记录时返回空对象。
func GetLatestEvent(c *gin.Context) {
	event, err := LatestEvent(globalDB)
	if err != nil {
		if errors.Is(err, ErrNoEvents) {
			c.JSON(http.StatusOK, gin.H{})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "读取最新对决失败"})
		return
	}
	c.JSON(http.StatusOK, formatEvent(event))
}
