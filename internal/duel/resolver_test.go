package duel

import (
	"testing"

	"github.com/PotterFan92/wizard-duels-backend/internal/spell"
)

// TestResolveAllPairs exhaustively checks the 3x3 outcome table.
func TestResolveAllPairs(t *testing.T) {
	cases := []struct {
		a, b spell.SpellType
		want Outcome
	}{
		{spell.TypeOffensive, spell.TypeOffensive, OutcomeDraw},
		{spell.TypeDefensive, spell.TypeDefensive, OutcomeDraw},
		{spell.TypeSupport, spell.TypeSupport, OutcomeDraw},

		{spell.TypeOffensive, spell.TypeSupport, OutcomeWin},
		{spell.TypeSupport, spell.TypeDefensive, OutcomeWin},
		{spell.TypeDefensive, spell.TypeOffensive, OutcomeWin},

		{spell.TypeSupport, spell.TypeOffensive, OutcomeLose},
		{spell.TypeDefensive, spell.TypeSupport, OutcomeLose},
		{spell.TypeOffensive, spell.TypeDefensive, OutcomeLose},
	}

	for _, tc := range cases {
		got := Resolve(tc.a, tc.b)
		if got != tc.want {
			t.Errorf("Resolve(%s, %s) = %s, want %s", tc.a, tc.b, got, tc.want)
		}
	}
}

// TestResolveSymmetry verifies that swapping the arguments flips WIN/LOSE
// and preserves DRAW.
func TestResolveSymmetry(t *testing.T) {
	types := []spell.SpellType{spell.TypeOffensive, spell.TypeDefensive, spell.TypeSupport}
	for _, a := range types {
		for _, b := range types {
			forward := Resolve(a, b)
			backward := Resolve(b, a)
			switch forward {
			case OutcomeDraw:
				if backward != OutcomeDraw {
					t.Errorf("Resolve(%s, %s) = DRAW but reverse = %s", a, b, backward)
				}
			case OutcomeWin:
				if backward != OutcomeLose {
					t.Errorf("Resolve(%s, %s) = WIN but reverse = %s", a, b, backward)
				}
			case OutcomeLose:
				if backward != OutcomeWin {
					t.Errorf("Resolve(%s, %s) = LOSE but reverse = %s", a, b, backward)
				}
			}
		}
	}
}
