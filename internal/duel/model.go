package duel

import "gorm.io/gorm"

// Outcome 定义了一场对决的结果枚举，始终以施法者的视角表示
type Outcome string

const (
	// OutcomeWin 表示施法者获胜
	OutcomeWin Outcome = "WIN"
	// OutcomeLose 表示施法者落败
	OutcomeLose Outcome = "LOSE"
	// OutcomeDraw 表示平局
	OutcomeDraw Outcome = "DRAW"
)

// HostTargetName 是目标无法解析时使用的占位名称。
// 这类事件没有TargetID，只更新施法者的排行榜数据。
const HostTargetName = "The Host"

// GameEvent 定义了一条规范化的对决记录。
// 记录一旦写入便不可变，events表是只追加的。
type GameEvent struct {
	gorm.Model

	// EventID 是事件的业务主键，在摄入时生成的UUID
	EventID string `gorm:"uniqueIndex;type:varchar(36);not null" json:"id"`

	// CasterID 是施法者在平台上的用户ID
	CasterID string `gorm:"index;not null" json:"caster_id"`

	// CasterName 是施法者的显示名称
	CasterName string `gorm:"not null" json:"caster_name"`

	// TargetID 是目标的用户ID。目标无法解析时为空
	TargetID string `json:"target_id,omitempty"`

	// TargetName 是目标的显示名称，无目标时为 HostTargetName
	TargetName string `json:"target_name"`

	// CasterSpell 是施法者法术的名称
	CasterSpell string `gorm:"not null" json:"caster_spell"`

	// TargetSpell 是目标法术的名称
	TargetSpell string `json:"target_spell,omitempty"`

	// Outcome 是对决结果，由服务端通过Resolve重新推导
	Outcome Outcome `gorm:"not null" json:"outcome"`

	// WinnerName 是胜者的显示名称，平局时为空
	WinnerName string `json:"winner_name,omitempty"`

	// Message 是用于弹窗和聊天播报的人类可读摘要
	Message string `json:"message"`
}
