package game

import (
	"testing"

	"github.com/vbelenko/termblast/internal/core"
)

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateTitle, "title"},
		{StateGameplay, "gameplay"},
		{StateGameOver, "game_over"},
		{StateStageCleared, "stage_cleared"},
		{StateWin, "win"},
		{StateTitle2, "title2"},
		{StateBossGameplay, "boss_gameplay"},
		{StateBossGameOver, "boss_game_over"},
		{State(99), "unknown"},
	}
	for _, tc := range tests {
		if got := tc.state.String(); got != tc.want {
			t.Errorf("State(%d).String() = %q, want %q", tc.state, got, tc.want)
		}
	}
}

func TestIllegalTransitionsRejected(t *testing.T) {
	tests := []struct {
		name   string
		from   State
		target State
	}{
		{"title cannot jump to win", StateTitle, StateWin},
		{"title cannot jump to game over", StateTitle, StateGameOver},
		{"gameplay cannot return to title", StateGameplay, StateTitle},
		{"game over cannot skip to win", StateGameOver, StateWin},
		{"win is terminal", StateWin, StateTitle},
		{"boss level cannot demote to normal game over", StateBossGameplay, StateGameOver},
		{"normal level cannot promote to boss game over", StateGameplay, StateBossGameOver},
		{"cleared screen cannot re-enter the boss level", StateStageCleared, StateBossGameplay},
		{"no self transition", StateGameplay, StateGameplay},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSim(t)
			s.state = tc.from

			if s.Request(tc.target) {
				t.Fatalf("Request(%v) from %v accepted, want rejection", tc.target, tc.from)
			}
			if s.State() != tc.from {
				t.Errorf("state = %v after rejected request, want unchanged %v", s.State(), tc.from)
			}
		})
	}
}

func TestLegalTransitionsApply(t *testing.T) {
	tests := []struct {
		name   string
		from   State
		target State
	}{
		{"title starts gameplay", StateTitle, StateGameplay},
		{"title swaps to second title", StateTitle, StateTitle2},
		{"second title swaps back", StateTitle2, StateTitle},
		{"second title starts boss level", StateTitle2, StateBossGameplay},
		{"gameplay ends in game over", StateGameplay, StateGameOver},
		{"gameplay ends in stage cleared", StateGameplay, StateStageCleared},
		{"gameplay ends in win", StateGameplay, StateWin},
		{"game over restarts gameplay", StateGameOver, StateGameplay},
		{"stage cleared continues gameplay", StateStageCleared, StateGameplay},
		{"boss level ends in boss game over", StateBossGameplay, StateBossGameOver},
		{"boss level ends in win", StateBossGameplay, StateWin},
		{"boss game over restarts the boss level", StateBossGameOver, StateBossGameplay},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSim(t)
			s.state = tc.from

			if !s.Request(tc.target) {
				t.Fatalf("Request(%v) from %v rejected, want acceptance", tc.target, tc.from)
			}
			if s.State() != tc.target {
				t.Errorf("state = %v after accepted request, want %v", s.State(), tc.target)
			}
		})
	}
}

func TestWinScreenIgnoresInput(t *testing.T) {
	s := newTestSim(t)
	s.state = StateWin

	for _, a := range []core.Action{core.ActionConfirm, core.ActionRestart, core.ActionSwap, core.ActionShoot} {
		res := s.Step(pressed(a))
		if res.State != StateWin || res.Changed {
			t.Errorf("Step(%v) on win screen = %+v, want unchanged Win", a, res)
		}
	}
}

func TestCombatStates(t *testing.T) {
	for st := StateTitle; st <= StateBossGameOver; st++ {
		want := st == StateGameplay || st == StateBossGameplay
		if got := st.Combat(); got != want {
			t.Errorf("%v.Combat() = %v, want %v", st, got, want)
		}
	}
}
