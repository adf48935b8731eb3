// Package config provides YAML-based game configuration loading and
// difficulty presets for the egg game.
package config

import (
	"fmt"
	"time"
)

// Config holds every tunable constant of a round.
type Config struct {
	Playfield   PlayfieldConfig   `yaml:"playfield"`
	Egg         EggConfig         `yaml:"egg"`
	Obstacles   ObstacleConfig    `yaml:"obstacles"`
	Triangles   TriangleConfig    `yaml:"triangles"`
	Health      HealthConfig      `yaml:"health"`
	Progression ProgressionConfig `yaml:"progression"`
	Hatch       HatchConfig       `yaml:"hatch"`
	Score       ScoreConfig       `yaml:"score"`
	Timing      TimingConfig      `yaml:"timing"`
}

// PlayfieldConfig is the logical size of the play area. Positions and
// speeds are in these units, independent of the terminal size.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// EggConfig defines the player avatar.
type EggConfig struct {
	Radius        float64       `yaml:"radius"`
	Speed         float64       `yaml:"speed"`         // Units per reference frame per axis
	Invincibility time.Duration `yaml:"invincibility"` // Window after a damaging hit
	FlashHz       float64       `yaml:"flash_hz"`      // Blink rate while invincible
	StartX        float64       `yaml:"start_x"`       // Fraction of playfield width
	StartY        float64       `yaml:"start_y"`       // Fraction of playfield height
}

// ObstacleConfig defines falling circles.
type ObstacleConfig struct {
	MinSize     int      `yaml:"min_size"`
	MaxSize     int      `yaml:"max_size"`
	SpawnChance float64  `yaml:"spawn_chance"` // Probability per reference frame
	StartSpeed  float64  `yaml:"start_speed"`
	MaxSpeed    float64  `yaml:"max_speed"` // 0 = unbounded
	SpawnY      float64  `yaml:"spawn_y"`
	SpawnMargin float64  `yaml:"spawn_margin"` // x is drawn from [0, width-margin]
	MaxLive     int      `yaml:"max_live"`     // 0 = unbounded
	Colors      []string `yaml:"colors"`       // Palette names
}

// TriangleConfig defines falling hatch pickups.
type TriangleConfig struct {
	Size        int     `yaml:"size"`
	SpawnChance float64 `yaml:"spawn_chance"`
	SpawnY      float64 `yaml:"spawn_y"`
	SpawnMargin float64 `yaml:"spawn_margin"`
	MaxLive     int     `yaml:"max_live"`
}

// HealthConfig defines damage and regeneration.
type HealthConfig struct {
	Max           int           `yaml:"max"`
	Damage        int           `yaml:"damage"`
	Regen         int           `yaml:"regen"`
	RegenInterval time.Duration `yaml:"regen_interval"`
}

// ProgressionConfig defines background rotation and speed escalation.
type ProgressionConfig struct {
	BackgroundInterval time.Duration `yaml:"background_interval"`
	LevelInterval      time.Duration `yaml:"level_interval"`
	SpeedStep          float64       `yaml:"speed_step"`
}

// HatchConfig defines the win condition.
type HatchConfig struct {
	PerPickup int `yaml:"per_pickup"`
	Goal      int `yaml:"goal"`
}

// ScoreConfig defines the exponential score decay.
type ScoreConfig struct {
	Start  float64 `yaml:"start"`
	Lambda float64 `yaml:"lambda"` // Decay per second
}

// TimingConfig defines how frame deltas map onto per-frame constants.
type TimingConfig struct {
	ReferenceFPS  int           `yaml:"reference_fps"`   // Rate the per-frame constants are tuned for
	MaxFrameDelta time.Duration `yaml:"max_frame_delta"` // Longer gaps are clamped
}

// ReferenceFrame returns the duration of one reference frame.
func (t TimingConfig) ReferenceFrame() time.Duration {
	if t.ReferenceFPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(t.ReferenceFPS)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Empty input means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", ErrInvalidConfig, s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Only the constants change; the rules stay the same.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Obstacles.StartSpeed = 1
		cfg.Obstacles.SpawnChance = 1.0 / 24
		cfg.Triangles.SpawnChance = 1.0 / 60
	case DifficultyHard:
		cfg.Obstacles.StartSpeed = 3
		cfg.Obstacles.SpawnChance = 1.0 / 10
		cfg.Triangles.SpawnChance = 1.0 / 150
	case DifficultyFixed:
		cfg.Progression.SpeedStep = 0
	}
}
