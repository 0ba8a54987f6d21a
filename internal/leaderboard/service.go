package leaderboard

import (
	"github.com/PotterFan92/wizard-duels-backend/internal/duel"
	"gorm.io/gorm"
)

// Service 是排行榜聚合器，duel模块事务的唯一写入方。
// 它实现了duel.StatsApplier接口。
type Service struct {
	db    *gorm.DB
	cache *TopCache
}

// NewService 创建排行榜服务。cache可以为nil，此时读取总是落到数据库。
func NewService(db *gorm.DB, cache *TopCache) *Service {
	return &Service{db: db, cache: cache}
}

// ApplyTx 在对决事务内为事件的参与者应用聚合增量。
// 施法者无条件+1 casts；结果为WIN时施法者+1 wins，为LOSE时+1 losses。
// 目标只有在TargetID可解析时才会记入，视角与施法者相反。
// 平局双方只增加casts。
func (s *Service) ApplyTx(tx *gorm.DB, event *duel.GameEvent) error {
	casterWon := event.Outcome == duel.OutcomeWin
	casterLost := event.Outcome == duel.OutcomeLose

	if err := upsertParticipantTx(tx, event.CasterID, event.CasterName, casterWon, casterLost); err != nil {
		return err
	}

	if event.TargetID != "" {
		// 目标的胜负与施法者相反
		if err := upsertParticipantTx(tx, event.TargetID, event.TargetName, casterLost, casterWon); err != nil {
			return err
		}
	}
	return nil
}

// InvalidateCache 在事务提交后丢弃读取侧缓存
func (s *Service) InvalidateCache() {
	if s.cache != nil {
		s.cache.invalidate()
	}
}

// Top 返回前N名。优先读取缓存，未命中或缓存不可用时回落到数据库，
// 并在成功后尝试回填缓存。缓存故障只记录日志，从不影响读取结果。
func (s *Service) Top(n int) ([]Entry, error) {
	if s.cache != nil {
		if entries, ok := s.cache.get(n); ok {
			return entries, nil
		}
	}

	entries, err := TopN(s.db, n)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.set(n, entries)
	}
	return entries, nil
}
