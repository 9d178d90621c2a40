package config

// DefaultGameConfig returns the built-in tuning used when no YAML
// config can be found.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Playfield: PlayfieldConfig{
			Width:  1024,
			Height: 768,
		},
		Player: PlayerConfig{
			StartX:     400,
			StartY:     100,
			Width:      64,
			Height:     64,
			Speed:      6,
			Health:     3,
			ChargeCost: 3,
		},
		Enemy: EnemyConfig{
			StartX:     450,
			StartY:     650,
			Width:      64,
			Height:     64,
			Speed:      6,
			Health:     5,
			ShotPeriod: 20,
			AnimRate:   0.1,
		},
		Boss: BossConfig{
			Health:       1800,
			Speed:        8,
			PlayerHealth: 1,
			ShotCooldown: 30,
		},
		Projectile: ProjectileConfig{
			Width:       64,
			Height:      64,
			PlayerSpeed: 10,
		},
	}
}
