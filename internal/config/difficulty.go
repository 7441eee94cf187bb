package config

import (
	"fmt"
	"strings"
)

// Difficulty selects one of the preset bundles.
// The numeric values match the keys that pick them in the settings section.
type Difficulty int

const (
	Easy   Difficulty = 1
	Medium Difficulty = 2
	Hard   Difficulty = 3
)

// String returns the lowercase mode name used in flags, files and stored scores.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

// Label returns the name shown on the settings buttons.
func (d Difficulty) Label() string {
	switch d {
	case Easy:
		return "Perseus Arm"
	case Hard:
		return "Norma Arm"
	default:
		return "Outer Arm"
	}
}

// ParseDifficulty converts a mode name or number into a Difficulty.
// An empty string yields Medium.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "medium", "2", "normal":
		return Medium, nil
	case "easy", "1":
		return Easy, nil
	case "hard", "3":
		return Hard, nil
	default:
		return Medium, fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", s)
	}
}
