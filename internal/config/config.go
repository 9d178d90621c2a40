// Package config provides YAML-based game configuration loading with
// hardcoded defaults as a fallback.
package config

// GameConfig contains all tuning parameters for the game.
type GameConfig struct {
	Playfield  PlayfieldConfig  `yaml:"playfield"`
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Boss       BossConfig       `yaml:"boss"`
	Projectile ProjectileConfig `yaml:"projectile"`
}

// PlayfieldConfig defines the logical playfield dimensions in pixels.
// The simulation runs in this coordinate space regardless of terminal size.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines player parameters.
type PlayerConfig struct {
	StartX     float64 `yaml:"start_x"`
	StartY     float64 `yaml:"start_y"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Speed      float64 `yaml:"speed"`
	Health     float64 `yaml:"health"`      // Normal-level health pool
	ChargeCost int     `yaml:"charge_cost"` // Charges consumed per shot
}

// EnemyConfig defines parameters for normal-level enemies.
type EnemyConfig struct {
	StartX     float64 `yaml:"start_x"`
	StartY     float64 `yaml:"start_y"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Speed      float64 `yaml:"speed"` // Projectile launch speed scale
	Health     float64 `yaml:"health"`
	ShotPeriod int     `yaml:"shot_period"` // Ticks between volleys
	AnimRate   float64 `yaml:"anim_rate"`   // Animation frames advanced per tick
}

// BossConfig defines parameters for the boss level.
type BossConfig struct {
	Health       float64 `yaml:"health"`
	Speed        float64 `yaml:"speed"`         // Projectile launch speed scale
	PlayerHealth float64 `yaml:"player_health"` // Player health pool on the boss level
	ShotCooldown int     `yaml:"shot_cooldown"` // Ticks between player shots (no charges)
}

// ProjectileConfig defines shared projectile parameters.
type ProjectileConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	PlayerSpeed float64 `yaml:"player_speed"` // Upward speed of player shots
}
