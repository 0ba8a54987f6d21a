package duel

import (
	"errors"
	"fmt"
	"time"

	"github.com/PotterFan92/wizard-duels-backend/internal/spell"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrValidation 表示手动触发的请求缺少必填字段或包含未知法术
var ErrValidation = errors.New("invalid duel input")

// StatsApplier 约定了在对决事务内更新排行榜聚合数据的能力。
// duel模块只依赖这个接口，不关心聚合数据存放在哪里。
type StatsApplier interface {
	// ApplyTx 在给定事务内为事件的参与者应用casts/wins/losses增量
	ApplyTx(tx *gorm.DB, event *GameEvent) error
	// InvalidateCache 在事务成功提交后使读取侧缓存失效
	InvalidateCache()
}

// Service 是对决事件的摄入器。
// 它把两种触发来源规范化为同一种GameEvent记录，
// 并把事件追加和排行榜更新作为同一个事务提交。
type Service struct {
	db    *gorm.DB
	stats StatsApplier
}

// NewService 创建一个新的摄入服务
func NewService(db *gorm.DB, stats StatsApplier) *Service {
	return &Service{db: db, stats: stats}
}

// ManualCastInput 是控制台手动触发对决的输入。
// 调用方可以附带自己认定的结果，但服务端不信任它。
type ManualCastInput struct {
	CasterID      string
	CasterName    string
	TargetID      string
	TargetName    string
	CasterSpellID string
	TargetSpellID string
}

// RedemptionInput 是Twitch积分兑换触发对决的输入。
// 兑换事件只携带施法者身份和一段自由文本的目标名，
// 双方法术都由摄入器从目录中随机抽取。
type RedemptionInput struct {
	CasterID   string
	CasterName string
	TargetName string
}

// RecordManualCast 处理手动路径：校验输入，必要时补抽目标法术，
// 重新推导结果后提交事件。
func (s *Service) RecordManualCast(in ManualCastInput) (*GameEvent, error) {
	if in.CasterID == "" || in.CasterName == "" {
		return nil, fmt.Errorf("%w: 缺少施法者身份", ErrValidation)
	}
	if in.CasterSpellID == "" {
		return nil, fmt.Errorf("%w: 缺少施法者法术", ErrValidation)
	}

	casterInfo, err := spell.GetInfoByID(in.CasterSpellID)
	if err != nil {
		if errors.Is(err, spell.ErrSpellNotFound) {
			return nil, fmt.Errorf("%w: 未知法术 %s", ErrValidation, in.CasterSpellID)
		}
		return nil, err
	}

	// 目标法术缺省时由服务端随机抽取
	targetInfo := spell.SpellInfo{}
	if in.TargetSpellID != "" {
		targetInfo, err = spell.GetInfoByID(in.TargetSpellID)
		if err != nil {
			if errors.Is(err, spell.ErrSpellNotFound) {
				return nil, fmt.Errorf("%w: 未知法术 %s", ErrValidation, in.TargetSpellID)
			}
			return nil, err
		}
	} else {
		_, targetInfo, err = spell.DrawRandomSpell()
		if err != nil {
			return nil, err
		}
	}

	event := buildEvent(in.CasterID, in.CasterName, in.TargetID, in.TargetName, casterInfo, targetInfo)
	if err := s.commit(event, nil); err != nil {
		return nil, err
	}
	return event, nil
}

// RecordRedemption 处理Webhook路径。
// inTx 由调用方提供，在提交事务内先行执行，用于消息ID防重放；
// 它返回错误时整个事务回滚，不会留下任何状态。
func (s *Service) RecordRedemption(in RedemptionInput, inTx func(tx *gorm.DB) error) (*GameEvent, error) {
	if in.CasterID == "" || in.CasterName == "" {
		return nil, fmt.Errorf("%w: 兑换事件缺少施法者身份", ErrValidation)
	}

	_, casterInfo, err := spell.DrawRandomSpell()
	if err != nil {
		return nil, err
	}
	_, targetInfo, err := spell.DrawRandomSpell()
	if err != nil {
		return nil, err
	}

	// 兑换事件只有目标的自由文本名称，没有可归属的用户ID
	event := buildEvent(in.CasterID, in.CasterName, "", in.TargetName, casterInfo, targetInfo)
	if err := s.commit(event, inTx); err != nil {
		return nil, err
	}
	return event, nil
}

// commit 以单个事务提交事件追加和排行榜更新，
// 成功后使读取侧缓存失效。
func (s *Service) commit(event *GameEvent, inTx func(tx *gorm.DB) error) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if inTx != nil {
			if err := inTx(tx); err != nil {
				return err
			}
		}
		if err := appendEventTx(tx, event); err != nil {
			return err
		}
		return s.stats.ApplyTx(tx, event)
	})
	if err != nil {
		return err
	}
	s.stats.InvalidateCache()
	return nil
}

// buildEvent 把一次对决的参与者和法术规范化为GameEvent。
// 事件ID和时间戳只在这里分配。
func buildEvent(casterID, casterName, targetID, targetName string, casterInfo, targetInfo spell.SpellInfo) *GameEvent {
	if targetName == "" {
		targetName = HostTargetName
		targetID = ""
	}

	outcome := Resolve(casterInfo.Type, targetInfo.Type)

	var winnerName string
	switch outcome {
	case OutcomeWin:
		winnerName = casterName
	case OutcomeLose:
		winnerName = targetName
	}

	event := &GameEvent{
		EventID:     uuid.NewString(),
		CasterID:    casterID,
		CasterName:  casterName,
		TargetID:    targetID,
		TargetName:  targetName,
		CasterSpell: casterInfo.Name,
		TargetSpell: targetInfo.Name,
		Outcome:     outcome,
		WinnerName:  winnerName,
		Message:     buildMessage(casterName, targetName, casterInfo.Name, targetInfo.Name, outcome),
	}
	event.CreatedAt = time.Now()
	return event
}

// buildMessage 生成用于弹窗和聊天播报的摘要文本
func buildMessage(casterName, targetName, casterSpell, targetSpell string, outcome Outcome) string {
	switch outcome {
	case OutcomeWin:
		return fmt.Sprintf("%s casts %s against %s's %s and wins the duel!", casterName, casterSpell, targetName, targetSpell)
	case OutcomeLose:
		return fmt.Sprintf("%s casts %s but %s's %s prevails!", casterName, casterSpell, targetName, targetSpell)
	default:
		return fmt.Sprintf("%s's %s meets %s's %s. The duel ends in a draw!", casterName, casterSpell, targetName, targetSpell)
	}
}
