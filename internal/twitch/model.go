package twitch

import "encoding/json"

// EventSub通知携带的HTTP头
const (
	headerMessageID   = "Twitch-Eventsub-Message-Id"
	headerTimestamp   = "Twitch-Eventsub-Message-Timestamp"
	headerSignature   = "Twitch-Eventsub-Message-Signature"
	headerMessageType = "Twitch-Eventsub-Message-Type"
)

// EventSub消息类型
const (
	messageTypeVerification = "webhook_callback_verification"
	messageTypeNotification = "notification"
	messageTypeRevocation   = "revocation"
)

// eventSubTypeRedemption 是触发对决的订阅类型：积分兑换
const eventSubTypeRedemption = "channel.channel_points_custom_reward_redemption.add"

// eventSubEnvelope 是EventSub通知的外层结构
type eventSubEnvelope struct {
	Challenge    string `json:"challenge"`
	Subscription struct {
		ID     string `json:"id"`
		Type   string `json:"type"`
		Status string `json:"status"`
	} `json:"subscription"`
	Event json.RawMessage `json:"event"`
}

// redemptionEvent 是积分兑换事件的载荷。
// UserInput 是观众兑换时填写的自由文本，作为对决目标的名称。
type redemptionEvent struct {
	UserID    string `json:"user_id"`
	UserLogin string `json:"user_login"`
	UserName  string `json:"user_name"`
	UserInput string `json:"user_input"`
	Reward    struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	} `json:"reward"`
}
