package main

import (
	"testing"
)

func TestLoadConfigDifficulty(t *testing.T) {
	t.Setenv("INVASION_CONFIG", "")
	t.Setenv("HOME", t.TempDir())

	tests := []struct {
		flag     string
		expected string
		wantErr  bool
	}{
		{"", "medium", false},
		{"easy", "easy", false},
		{"3", "hard", false},
		{"insane", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.flag, func(t *testing.T) {
			flagConfig = ""
			flagDifficulty = tc.flag
			defer func() { flagDifficulty = "" }()

			cfg, err := loadConfig()
			if tc.wantErr {
				if err == nil {
					t.Errorf("loadConfig() with --difficulty %q should fail", tc.flag)
				}
				return
			}
			if err != nil {
				t.Fatalf("loadConfig() error = %v", err)
			}
			if cfg.Difficulty.Default != tc.expected {
				t.Errorf("Difficulty.Default = %q, expected %q", cfg.Difficulty.Default, tc.expected)
			}
		})
	}
}

func TestCheckFlagsFPS(t *testing.T) {
	defer func() { flagFPS = 60 }()

	tests := []struct {
		fps     int
		wantErr bool
	}{
		{60, false},
		{1, false},
		{0, true},
		{-30, true},
	}

	for _, tc := range tests {
		flagFPS = tc.fps
		err := checkFlags(rootCmd, nil)
		if (err != nil) != tc.wantErr {
			t.Errorf("checkFlags() with --fps %d error = %v, expected error %v", tc.fps, err, tc.wantErr)
		}
	}
}

func TestSeed(t *testing.T) {
	flagSeed = 42
	defer func() { flagSeed = 0 }()

	if got := seed(); got != 42 {
		t.Errorf("seed() = %d, expected 42", got)
	}

	flagSeed = 0
	if seed() == 0 {
		t.Error("seed() should pick a time-based seed when the flag is 0")
	}
}

func TestSubcommands(t *testing.T) {
	for _, name := range []string{"window", "serve", "scores", "config"} {
		cmd, _, err := rootCmd.Find([]string{name})
		if err != nil {
			t.Errorf("Find(%q) error = %v", name, err)
			continue
		}
		if cmd.Name() != name {
			t.Errorf("Find(%q).Name() = %q, expected %q", name, cmd.Name(), name)
		}
	}
}
