package config

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNewSettingsConvertsSpeeds(t *testing.T) {
	cfg := DefaultConfig()
	s := NewSettings(cfg, 60)

	if !almostEqual(s.ShipSpeed, cfg.Player.ShipSpeed/60) {
		t.Errorf("ShipSpeed = %v, expected %v", s.ShipSpeed, cfg.Player.ShipSpeed/60)
	}
	if !almostEqual(s.StarSpeed, cfg.Stars.Speed/60) {
		t.Errorf("StarSpeed = %v, expected %v", s.StarSpeed, cfg.Stars.Speed/60)
	}
	if s.HitFreezeTicks != 60 {
		t.Errorf("HitFreezeTicks = %d, expected 60", s.HitFreezeTicks)
	}
	if !almostEqual(s.BossFireChance, 1.44/60) {
		t.Errorf("BossFireChance = %v, expected %v", s.BossFireChance, 1.44/60)
	}
	if s.FleetDirection != 1 {
		t.Errorf("FleetDirection = %d, expected 1", s.FleetDirection)
	}
	if s.Difficulty != Medium || s.ShipsLimit != 2 {
		t.Errorf("initial difficulty = %v (ships %d), expected medium with 2 ships", s.Difficulty, s.ShipsLimit)
	}
}

func TestBossFireChanceFollowsTickRate(t *testing.T) {
	tests := []struct {
		tickRate int
		expected float64
	}{
		{144, 0.01},
		{60, 0.024},
		{30, 0.048},
	}

	for _, tc := range tests {
		s := NewSettings(DefaultConfig(), tc.tickRate)
		if !almostEqual(s.BossFireChance, tc.expected) {
			t.Errorf("NewSettings(%d).BossFireChance = %v, expected %v", tc.tickRate, s.BossFireChance, tc.expected)
		}
	}
}

func TestNewSettingsDefaultDifficulty(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Difficulty.Default = "hard"
	s := NewSettings(cfg, 30)

	if s.Difficulty != Hard || s.ShipsLimit != 1 || s.FleetDropSpeed != 2 {
		t.Errorf("NewSettings with default hard = %v ships %d drop %d", s.Difficulty, s.ShipsLimit, s.FleetDropSpeed)
	}
}

func TestSwitchDifficultyBundles(t *testing.T) {
	tests := []struct {
		mode                                      Difficulty
		ships, playerBullets, damage, model       int
		alienBullets, drop, bossBullets, extraRow int
	}{
		{Easy, 3, 5, 4, 1, 1, 1, 3, 0},
		{Medium, 2, 4, 3, 2, 2, 1, 4, 1},
		{Hard, 1, 3, 2, 3, 3, 2, 5, 2},
	}

	for _, tc := range tests {
		t.Run(tc.mode.String(), func(t *testing.T) {
			s := NewSettings(DefaultConfig(), 60)
			s.SwitchDifficulty(tc.mode)

			got := []int{s.ShipsLimit, s.PlayerBulletsAllowed, s.BossDamagePerHit, s.AlienModel,
				s.AlienBulletsAllowed, s.FleetDropSpeed, s.BossBulletsAllowed, s.ExtraAliensPerRow}
			want := []int{tc.ships, tc.playerBullets, tc.damage, tc.model,
				tc.alienBullets, tc.drop, tc.bossBullets, tc.extraRow}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("bundle field %d = %d, expected %d", i, got[i], want[i])
				}
			}
			if s.BossModel != tc.model {
				t.Errorf("BossModel = %d, expected %d", s.BossModel, tc.model)
			}
		})
	}
}

func TestResetDifficultyRestoresMedium(t *testing.T) {
	medium := NewSettings(DefaultConfig(), 60)

	for _, mode := range []Difficulty{Easy, Medium, Hard} {
		s := NewSettings(DefaultConfig(), 60)
		s.SwitchDifficulty(mode)
		s.ResetDifficulty()

		if *s != *medium {
			t.Errorf("SwitchDifficulty(%v) then ResetDifficulty() = %+v, expected %+v", mode, *s, *medium)
		}
	}
}

func TestIncreaseGameplaySpeed(t *testing.T) {
	s := NewSettings(DefaultConfig(), 60)
	s.ShipSpeed = 40.0
	before := *s

	s.IncreaseGameplaySpeed()

	if s.ShipSpeed != 42.0 {
		t.Errorf("ShipSpeed = %v, expected 42.0", s.ShipSpeed)
	}
	pairs := []struct {
		name          string
		before, after float64
	}{
		{"PlayerBulletSpeed", before.PlayerBulletSpeed, s.PlayerBulletSpeed},
		{"AlienSpeed", before.AlienSpeed, s.AlienSpeed},
		{"AlienBulletSpeed", before.AlienBulletSpeed, s.AlienBulletSpeed},
		{"BossSpeed", before.BossSpeed, s.BossSpeed},
		{"BossBulletSpeed", before.BossBulletSpeed, s.BossBulletSpeed},
		{"StarSpeed", before.StarSpeed, s.StarSpeed},
	}
	for _, p := range pairs {
		if !almostEqual(p.after, p.before*1.05) {
			t.Errorf("%s = %v, expected %v", p.name, p.after, p.before*1.05)
		}
	}
	if s.PointsForAlien != 52 {
		t.Errorf("PointsForAlien = %d, expected 52", s.PointsForAlien)
	}
}

func TestResetGameplaySpeedup(t *testing.T) {
	fresh := NewSettings(DefaultConfig(), 60)
	s := NewSettings(DefaultConfig(), 60)

	for i := 0; i < 5; i++ {
		s.IncreaseGameplaySpeed()
	}
	s.ReverseFleet()
	if s.FleetDirection != -1 {
		t.Fatalf("ReverseFleet() direction = %d, expected -1", s.FleetDirection)
	}

	s.ResetGameplaySpeedup()
	if *s != *fresh {
		t.Errorf("ResetGameplaySpeedup() = %+v, expected %+v", *s, *fresh)
	}
}
