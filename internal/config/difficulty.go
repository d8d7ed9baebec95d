package config

import (
	"errors"
	"fmt"
	"strings"
)

// DifficultyPreset is a named adjustment applied on top of the loaded tuning.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ErrUnknownPreset is returned by ParsePreset for names it does not know.
var ErrUnknownPreset = errors.New("unknown difficulty preset")

// Presets lists the accepted preset names.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// PresetNames returns the accepted names as a comma-separated list.
func PresetNames() string {
	names := make([]string, 0, len(Presets()))
	for _, p := range Presets() {
		names = append(names, string(p))
	}
	return strings.Join(names, ", ")
}

// ParsePreset maps a user-supplied name to a preset. Empty means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q (want one of %s)", ErrUnknownPreset, name, PresetNames())
	}
}

// ApplyInvadersPreset adjusts alien aggression. Normal leaves the tuning as
// loaded. Alien hp is never touched: every preset keeps the loaded hits-to-kill.
func ApplyInvadersPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		if cfg.Aliens.FirePercent > 1 {
			cfg.Aliens.FirePercent /= 2
		}
	case DifficultyHard:
		cfg.Aliens.FirePercent = min(cfg.Aliens.FirePercent*2, 100)
		cfg.Aliens.Speed++
	}
}
