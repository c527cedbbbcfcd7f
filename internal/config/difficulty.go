package config

import (
	"fmt"
	"time"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

const (
	easyPeriod = 140 * time.Millisecond
	hardPeriod = 70 * time.Millisecond
)

// Presets lists the known presets in increasing difficulty.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	}
	return "", fmt.Errorf("%w: unknown difficulty %q", ErrInvalid, s)
}

// Period returns the tick period for the preset. Normal keeps base.
func (p DifficultyPreset) Period(base time.Duration) time.Duration {
	switch p {
	case DifficultyEasy:
		return easyPeriod
	case DifficultyHard:
		return hardPeriod
	default:
		return base
	}
}
