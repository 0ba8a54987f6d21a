package duel

import "github.com/PotterFan92/wizard-duels-backend/internal/spell"

// Resolve 计算两个法术类型对决的结果，以第一个参数的视角返回。
// 三种类型构成环形克制：攻击克辅助，辅助克防御，防御克攻击；
// 类型相同为平局，其余组合均为落败。
// 纯函数，无任何副作用。
func Resolve(a, b spell.SpellType) Outcome {
	if a == b {
		return OutcomeDraw
	}
	switch {
	case a == spell.TypeOffensive && b == spell.TypeSupport:
		return OutcomeWin
	case a == spell.TypeSupport && b == spell.TypeDefensive:
		return OutcomeWin
	case a == spell.TypeDefensive && b == spell.TypeOffensive:
		return OutcomeWin
	}
	return OutcomeLose
}
