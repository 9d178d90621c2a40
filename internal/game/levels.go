package game

import (
	"github.com/vbelenko/termblast/internal/config"
	"github.com/vbelenko/termblast/internal/core"
)

// LevelSpec describes one normal combat level: the enemy's health pool
// and its volley pattern. The boss level is built separately from the
// boss config.
type LevelSpec struct {
	Name        string
	EnemyHealth float64
	ShotPeriod  int
	ConeMin     float64
	ConeMax     float64
}

// normalLevels returns the linear level sequence. The opening stage
// fires in the wide downward cone; the second stage is tougher and
// switches to the biased cone with a shorter volley period.
func normalLevels(cfg config.GameConfig) []LevelSpec {
	secondPeriod := cfg.Enemy.ShotPeriod * 2 / 3
	if secondPeriod < 1 {
		secondPeriod = 1
	}
	return []LevelSpec{
		{
			Name:        "stage 1",
			EnemyHealth: cfg.Enemy.Health,
			ShotPeriod:  cfg.Enemy.ShotPeriod,
			ConeMin:     ConeWideMin,
			ConeMax:     ConeWideMax,
		},
		{
			Name:        "stage 2",
			EnemyHealth: cfg.Enemy.Health * 2,
			ShotPeriod:  secondPeriod,
			ConeMin:     ConeBiasedMin,
			ConeMax:     ConeBiasedMax,
		},
	}
}

// backdropFor returns the atlas region of a screen state's backdrop.
func backdropFor(st State) core.Rect {
	switch st {
	case StateTitle:
		return cellBackdropTitle
	case StateTitle2:
		return cellBackdropTitle2
	case StateGameOver, StateBossGameOver:
		return cellBackdropOver
	case StateStageCleared:
		return cellBackdropCleared
	case StateWin:
		return cellBackdropWin
	default:
		return core.Rect{}
	}
}

// hasPlaceholderEnemy reports whether a screen state shows an idle
// enemy sprite (the victor lingering over the death screens).
func hasPlaceholderEnemy(st State) bool {
	return st == StateGameOver || st == StateBossGameOver || st == StateStageCleared
}
