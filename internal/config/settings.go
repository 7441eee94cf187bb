package config

import "math"

// Settings is the mutable record of knobs the simulation reads every tick.
// Speeds are in cells per tick. A Settings value is owned by one game.
type Settings struct {
	base     Config
	tickRate int

	Difficulty Difficulty

	ShipSpeed         float64
	PlayerBulletSpeed float64
	AlienSpeed        float64
	AlienBulletSpeed  float64
	BossSpeed         float64
	BossBulletSpeed   float64
	StarSpeed         float64

	FleetDirection int // +1 right, -1 left
	FleetDropSpeed int // Rows dropped on each edge flip

	ShipsLimit           int
	PlayerBulletsAllowed int
	AlienBulletsAllowed  int
	BossBulletsAllowed   int

	PointsForAlien   int
	BossLifePoints   int
	BossDamagePerHit int
	BossFireChance   float64 // Probability of a boss shot per tick
	BossLifeBarWidth int

	AlienModel        int
	BossModel         int
	ExtraAliensPerRow int
	AlienSpacing      int
	FleetRowSpacing   int
	FleetTopRows      int

	StarsPerRow int
	StarRows    int

	SpeedupScale   float64
	ScoreScale     float64
	FinalLevel     int
	HitFreezeTicks int
}

// NewSettings derives per-tick settings from cfg at the given tick rate.
// The difficulty starts at cfg.Difficulty.Default.
func NewSettings(cfg Config, tickRate int) *Settings {
	if tickRate <= 0 {
		tickRate = 60
	}
	s := &Settings{
		base:     cfg,
		tickRate: tickRate,

		BossLifePoints:   cfg.Boss.LifePoints,
		BossFireChance:   math.Min(cfg.Boss.FireRate/float64(tickRate), 1),
		BossLifeBarWidth: cfg.Boss.LifeBarWidth,

		AlienSpacing:    cfg.Aliens.Spacing,
		FleetRowSpacing: cfg.Aliens.RowSpacing,
		FleetTopRows:    cfg.Aliens.TopRows,

		StarsPerRow: cfg.Stars.PerRow,
		StarRows:    cfg.Stars.Rows,

		SpeedupScale:   cfg.Progression.SpeedupScale,
		ScoreScale:     cfg.Progression.ScoreScale,
		FinalLevel:     cfg.Progression.FinalLevel,
		HitFreezeTicks: int(math.Round(cfg.Progression.HitFreezeSeconds * float64(tickRate))),
	}
	s.ResetGameplaySpeedup()

	mode, err := ParseDifficulty(cfg.Difficulty.Default)
	if err != nil {
		mode = Medium
	}
	s.SwitchDifficulty(mode)
	return s
}

// TickRate returns the tick rate the speeds were derived for.
func (s *Settings) TickRate() int {
	return s.tickRate
}

// perTick converts a cells-per-second value into cells per tick.
func (s *Settings) perTick(v float64) float64 {
	return v / float64(s.tickRate)
}

// SwitchDifficulty applies the bundle of the given mode.
// Speeds and score scaling are left untouched.
func (s *Settings) SwitchDifficulty(mode Difficulty) {
	if mode != Easy && mode != Hard {
		mode = Medium
	}
	p := s.base.Difficulty.Preset(mode)

	s.Difficulty = mode
	s.ShipsLimit = p.ShipsLimit
	s.PlayerBulletsAllowed = p.PlayerBullets
	s.BossDamagePerHit = p.BossDamage
	s.AlienModel = p.AlienModel
	s.AlienBulletsAllowed = p.AlienBullets
	s.FleetDropSpeed = p.DropRows
	s.BossModel = p.BossModel
	s.BossBulletsAllowed = p.BossBullets
	s.ExtraAliensPerRow = p.ExtraAliensPerRow
}

// ResetDifficulty restores the Medium bundle.
func (s *Settings) ResetDifficulty() {
	s.SwitchDifficulty(Medium)
}

// ResetGameplaySpeedup restores the base speeds, the fleet direction and the alien value.
func (s *Settings) ResetGameplaySpeedup() {
	s.ShipSpeed = s.perTick(s.base.Player.ShipSpeed)
	s.PlayerBulletSpeed = s.perTick(s.base.Player.BulletSpeed)
	s.AlienSpeed = s.perTick(s.base.Aliens.Speed)
	s.AlienBulletSpeed = s.perTick(s.base.Aliens.BulletSpeed)
	s.BossSpeed = s.perTick(s.base.Boss.Speed)
	s.BossBulletSpeed = s.perTick(s.base.Boss.BulletSpeed)
	s.StarSpeed = s.perTick(s.base.Stars.Speed)
	s.FleetDirection = 1
	s.PointsForAlien = s.base.Aliens.Points
}

// IncreaseGameplaySpeed scales every speed by SpeedupScale and the alien value by ScoreScale.
func (s *Settings) IncreaseGameplaySpeed() {
	s.ShipSpeed *= s.SpeedupScale
	s.PlayerBulletSpeed *= s.SpeedupScale
	s.AlienSpeed *= s.SpeedupScale
	s.AlienBulletSpeed *= s.SpeedupScale
	s.BossSpeed *= s.SpeedupScale
	s.BossBulletSpeed *= s.SpeedupScale
	s.StarSpeed *= s.SpeedupScale
	s.PointsForAlien = int(float64(s.PointsForAlien) * s.ScoreScale)
}

// ReverseFleet flips the fleet's horizontal direction.
func (s *Settings) ReverseFleet() {
	s.FleetDirection = -s.FleetDirection
}
