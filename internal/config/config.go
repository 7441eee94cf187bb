// Package config provides YAML-based game configuration loading and
// the mutable per-playthrough Settings record derived from it.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config contains every tunable base value of the game.
// Speeds are expressed in cells per second and converted to per-tick values by NewSettings.
type Config struct {
	Player      PlayerConfig      `yaml:"player"`
	Aliens      AliensConfig      `yaml:"aliens"`
	Boss        BossConfig        `yaml:"boss"`
	Stars       StarsConfig       `yaml:"stars"`
	Progression ProgressionConfig `yaml:"progression"`
	Difficulty  DifficultyConfig  `yaml:"difficulty"`
}

// PlayerConfig defines the player's ship and bullets.
type PlayerConfig struct {
	ShipSpeed   float64 `yaml:"ship_speed"`
	BulletSpeed float64 `yaml:"bullet_speed"`
}

// AliensConfig defines soldier movement, scoring and fleet layout.
type AliensConfig struct {
	Speed       float64 `yaml:"speed"`
	BulletSpeed float64 `yaml:"bullet_speed"`
	Points      int     `yaml:"points"`
	Spacing     int     `yaml:"spacing"`     // Horizontal pitch in alien widths
	RowSpacing  int     `yaml:"row_spacing"` // Vertical pitch in alien heights
	TopRows     int     `yaml:"top_rows"`    // First row offset in alien heights
}

// BossConfig defines the alien general that guards the final level.
type BossConfig struct {
	Speed        float64 `yaml:"speed"`
	BulletSpeed  float64 `yaml:"bullet_speed"`
	LifePoints   int     `yaml:"life_points"`
	FireRate     float64 `yaml:"fire_rate"` // Expected shots per second while below the cap
	LifeBarWidth int     `yaml:"life_bar_width"`
}

// StarsConfig defines the drifting background.
type StarsConfig struct {
	PerRow int     `yaml:"per_row"`
	Rows   int     `yaml:"rows"`
	Speed  float64 `yaml:"speed"`
}

// ProgressionConfig defines how a playthrough escalates.
type ProgressionConfig struct {
	SpeedupScale     float64 `yaml:"speedup_scale"`
	ScoreScale       float64 `yaml:"score_scale"`
	FinalLevel       int     `yaml:"final_level"`
	HitFreezeSeconds float64 `yaml:"hit_freeze_seconds"`
}

// DifficultyConfig holds the bundle applied by each difficulty mode.
type DifficultyConfig struct {
	Default string       `yaml:"default"`
	Easy    PresetConfig `yaml:"easy"`
	Medium  PresetConfig `yaml:"medium"`
	Hard    PresetConfig `yaml:"hard"`
}

// PresetConfig is the set of knobs a difficulty mode overrides.
type PresetConfig struct {
	ShipsLimit        int `yaml:"ships_limit"`
	PlayerBullets     int `yaml:"player_bullets"`
	BossDamage        int `yaml:"boss_damage"`
	AlienModel        int `yaml:"alien_model"`
	AlienBullets      int `yaml:"alien_bullets"`
	DropRows          int `yaml:"drop_rows"`
	BossModel         int `yaml:"boss_model"`
	BossBullets       int `yaml:"boss_bullets"`
	ExtraAliensPerRow int `yaml:"extra_aliens_per_row"`
}

// Preset returns the bundle for the given mode.
func (d DifficultyConfig) Preset(mode Difficulty) PresetConfig {
	switch mode {
	case Easy:
		return d.Easy
	case Hard:
		return d.Hard
	default:
		return d.Medium
	}
}

// Validate checks that the configuration can drive a playable game.
func (c Config) Validate() error {
	speeds := []struct {
		name string
		val  float64
	}{
		{"player.ship_speed", c.Player.ShipSpeed},
		{"player.bullet_speed", c.Player.BulletSpeed},
		{"aliens.speed", c.Aliens.Speed},
		{"aliens.bullet_speed", c.Aliens.BulletSpeed},
		{"boss.speed", c.Boss.Speed},
		{"boss.bullet_speed", c.Boss.BulletSpeed},
		{"stars.speed", c.Stars.Speed},
	}
	for _, s := range speeds {
		if s.val <= 0 {
			return fmt.Errorf("config: %s must be positive, got %v", s.name, s.val)
		}
	}

	if c.Aliens.Points <= 0 {
		return fmt.Errorf("config: aliens.points must be positive, got %d", c.Aliens.Points)
	}
	if c.Aliens.Spacing < 1 || c.Aliens.RowSpacing < 1 || c.Aliens.TopRows < 0 {
		return fmt.Errorf("config: invalid fleet layout (spacing %d, row_spacing %d, top_rows %d)",
			c.Aliens.Spacing, c.Aliens.RowSpacing, c.Aliens.TopRows)
	}
	if c.Boss.LifePoints <= 0 {
		return fmt.Errorf("config: boss.life_points must be positive, got %d", c.Boss.LifePoints)
	}
	if c.Boss.FireRate < 0 {
		return fmt.Errorf("config: boss.fire_rate must not be negative, got %v", c.Boss.FireRate)
	}
	if c.Stars.PerRow < 0 || c.Stars.Rows < 1 {
		return fmt.Errorf("config: invalid star field (per_row %d, rows %d)", c.Stars.PerRow, c.Stars.Rows)
	}
	if c.Progression.SpeedupScale <= 1 {
		return fmt.Errorf("config: progression.speedup_scale must be greater than 1, got %v", c.Progression.SpeedupScale)
	}
	if c.Progression.ScoreScale <= 1 {
		return fmt.Errorf("config: progression.score_scale must be greater than 1, got %v", c.Progression.ScoreScale)
	}
	if c.Progression.FinalLevel < 1 {
		return fmt.Errorf("config: progression.final_level must be at least 1, got %d", c.Progression.FinalLevel)
	}
	if c.Progression.HitFreezeSeconds < 0 {
		return fmt.Errorf("config: progression.hit_freeze_seconds must not be negative")
	}

	if _, err := ParseDifficulty(c.Difficulty.Default); err != nil {
		return fmt.Errorf("config: difficulty.default: %w", err)
	}
	for _, mode := range []Difficulty{Easy, Medium, Hard} {
		if err := c.Difficulty.Preset(mode).validate(); err != nil {
			return fmt.Errorf("config: difficulty.%s: %w", mode, err)
		}
	}
	return nil
}

func (p PresetConfig) validate() error {
	if p.ShipsLimit < 1 {
		return fmt.Errorf("ships_limit must be at least 1, got %d", p.ShipsLimit)
	}
	if p.PlayerBullets < 1 || p.AlienBullets < 1 || p.BossBullets < 1 {
		return fmt.Errorf("bullet caps must be at least 1")
	}
	if p.BossDamage < 1 {
		return fmt.Errorf("boss_damage must be at least 1, got %d", p.BossDamage)
	}
	if p.AlienModel < 1 || p.AlienModel > 3 || p.BossModel < 1 || p.BossModel > 3 {
		return fmt.Errorf("models must be between 1 and 3")
	}
	if p.DropRows < 1 {
		return fmt.Errorf("drop_rows must be at least 1, got %d", p.DropRows)
	}
	if p.ExtraAliensPerRow < 0 {
		return fmt.Errorf("extra_aliens_per_row must not be negative")
	}
	return nil
}

// Marshal renders the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}
