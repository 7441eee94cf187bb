package config

import (
	_ "embed"
)

//go:embed defaults/invasion.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

// DefaultConfig returns the default configuration.
// It mirrors defaults/invasion.yaml and is used when the embedded file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Player: PlayerConfig{
			ShipSpeed:   40,
			BulletSpeed: 24,
		},
		Aliens: AliensConfig{
			Speed:       12,
			BulletSpeed: 10,
			Points:      50,
			Spacing:     2,
			RowSpacing:  2,
			TopRows:     3,
		},
		Boss: BossConfig{
			Speed:        24,
			BulletSpeed:  10,
			LifePoints:   200,
			FireRate:     1.44, // 1% per frame at 144 FPS
			LifeBarWidth: 20,
		},
		Stars: StarsConfig{
			PerRow: 3,
			Rows:   8,
			Speed:  6,
		},
		Progression: ProgressionConfig{
			SpeedupScale:     1.05,
			ScoreScale:       1.05,
			FinalLevel:       15,
			HitFreezeSeconds: 1.0,
		},
		Difficulty: DifficultyConfig{
			Default: "medium",
			Easy: PresetConfig{
				ShipsLimit: 3, PlayerBullets: 5, BossDamage: 4,
				AlienModel: 1, AlienBullets: 1, DropRows: 1,
				BossModel: 1, BossBullets: 3, ExtraAliensPerRow: 0,
			},
			Medium: PresetConfig{
				ShipsLimit: 2, PlayerBullets: 4, BossDamage: 3,
				AlienModel: 2, AlienBullets: 2, DropRows: 1,
				BossModel: 2, BossBullets: 4, ExtraAliensPerRow: 1,
			},
			Hard: PresetConfig{
				ShipsLimit: 1, PlayerBullets: 3, BossDamage: 2,
				AlienModel: 3, AlienBullets: 3, DropRows: 2,
				BossModel: 3, BossBullets: 5, ExtraAliensPerRow: 2,
			},
		},
	}
}
