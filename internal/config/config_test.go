package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultMatchesDefaultConfig(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(DefaultYAML()) error = %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded YAML = %+v, expected %+v", cfg, DefaultConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v, expected nil", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "invasion.yaml")
	content := "aliens:\n  points: 75\nprogression:\n  final_level: 3\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Aliens.Points != 75 {
		t.Errorf("Aliens.Points = %d, expected 75", cfg.Aliens.Points)
	}
	if cfg.Progression.FinalLevel != 3 {
		t.Errorf("Progression.FinalLevel = %d, expected 3", cfg.Progression.FinalLevel)
	}
	// Keys absent from the file keep their defaults
	if cfg.Player.ShipSpeed != DefaultConfig().Player.ShipSpeed {
		t.Errorf("Player.ShipSpeed = %v, expected default %v", cfg.Player.ShipSpeed, DefaultConfig().Player.ShipSpeed)
	}
}

func TestLoadFromEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "env.yaml")
	if err := os.WriteFile(path, []byte("boss:\n  life_points: 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Boss.LifePoints != 30 {
		t.Errorf("Boss.LifePoints = %d, expected 30", cfg.Boss.LifePoints)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() with missing explicit path should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("player: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() with malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("progression:\n  speedup_scale: 0.9\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(invalid)
	if err == nil || !strings.Contains(err.Error(), "speedup_scale") {
		t.Errorf("Load() with invalid scale error = %v, expected speedup_scale error", err)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("Load() = %+v, expected defaults", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errSub string
	}{
		{"zero ship speed", func(c *Config) { c.Player.ShipSpeed = 0 }, "player.ship_speed"},
		{"negative star speed", func(c *Config) { c.Stars.Speed = -1 }, "stars.speed"},
		{"final level zero", func(c *Config) { c.Progression.FinalLevel = 0 }, "final_level"},
		{"score scale one", func(c *Config) { c.Progression.ScoreScale = 1 }, "score_scale"},
		{"unknown default mode", func(c *Config) { c.Difficulty.Default = "insane" }, "difficulty.default"},
		{"zero bullet cap", func(c *Config) { c.Difficulty.Hard.PlayerBullets = 0 }, "difficulty.hard"},
		{"bad alien model", func(c *Config) { c.Difficulty.Easy.AlienModel = 4 }, "difficulty.easy"},
		{"no lives", func(c *Config) { c.Difficulty.Medium.ShipsLimit = 0 }, "difficulty.medium"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatalf("Validate() = nil, expected error containing %q", tc.errSub)
			}
			if !strings.Contains(err.Error(), tc.errSub) {
				t.Errorf("Validate() = %v, expected error containing %q", err, tc.errSub)
			}
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Aliens.Points = 99

	data, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), "points: 99") {
		t.Errorf("Marshal() output missing aliens.points:\n%s", data)
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in       string
		expected Difficulty
		wantErr  bool
	}{
		{"easy", Easy, false},
		{"EASY", Easy, false},
		{"2", Medium, false},
		{"", Medium, false},
		{" hard ", Hard, false},
		{"3", Hard, false},
		{"nightmare", Medium, true},
	}

	for _, tc := range tests {
		got, err := ParseDifficulty(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDifficulty(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.expected {
			t.Errorf("ParseDifficulty(%q) = %v, expected %v", tc.in, got, tc.expected)
		}
	}

	if Hard.String() != "hard" || Easy.Label() != "Perseus Arm" {
		t.Errorf("String()/Label() mismatch: %q %q", Hard.String(), Easy.Label())
	}
}
