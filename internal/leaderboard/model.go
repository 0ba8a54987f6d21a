package leaderboard

import "time"

// Entry 定义了每个用户在排行榜中的聚合数据。
// 不变量：任何时刻 Wins + Losses <= Casts；UserID唯一；
// 条目在用户首次参与对决时惰性创建，正常运行中永不删除。
// 排名是读取时派生的值，不在表中持久化。
type Entry struct {
	// UserID 是用户在平台上的唯一ID，作为主键，
	// 原子upsert依赖这里的唯一约束。
	UserID string `gorm:"primaryKey;type:varchar(64)" json:"user_id"`

	// Username 是用户的显示名称，随最近一次事件更新
	Username string `gorm:"not null" json:"username"`

	// Wins 记录用户获胜的场次
	Wins int `json:"wins"`

	// Losses 记录用户落败的场次
	Losses int `json:"losses"`

	// Casts 记录用户参与对决的总场次
	Casts int `json:"casts"`

	// 由GORM自动管理
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"updated_at"`
}
