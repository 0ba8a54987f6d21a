package spell

import "gorm.io/gorm"

// SpellType 定义了法术的三种类型枚举
type SpellType string

const (
	// TypeOffensive 攻击型法术
	TypeOffensive SpellType = "OFFENSIVE"
	// TypeDefensive 防御型法术
	TypeDefensive SpellType = "DEFENSIVE"
	// TypeSupport 辅助型法术
	TypeSupport SpellType = "SUPPORT"
)

// Spell 定义了数据库中法术的数据结构
type Spell struct {
	// gorm.Model 包含 ID, CreatedAt, UpdatedAt, DeletedAt
	gorm.Model

	// SpellID 是法术的唯一字符串ID, 例如 "o7"
	// 我们将使用它作为业务逻辑中的主键
	SpellID string `gorm:"uniqueIndex;not null" json:"id"`

	// Name 是法术的咒语名称, 例如 "Avada Kedavra"
	Name string `json:"name"`

	// Type 是法术的类型，决定对决结果
	Type SpellType `gorm:"not null" json:"type"`

	// Description 是法术效果的简短描述
	Description string `json:"description"`

	// Color 是前端展示用的颜色类名
	Color string `json:"color"`
}
