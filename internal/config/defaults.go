package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/egghatch.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration. It mirrors the embedded
// YAML and is the last fallback if that fails to parse.
func DefaultConfig() Config {
	return Config{
		Playfield: PlayfieldConfig{
			Width:  800,
			Height: 600,
		},
		Egg: EggConfig{
			Radius:        20,
			Speed:         5,
			Invincibility: 2 * time.Second,
			FlashHz:       5,
			StartX:        0.25,
			StartY:        0.5,
		},
		Obstacles: ObstacleConfig{
			MinSize:     30,
			MaxSize:     80,
			SpawnChance: 1.0 / 16,
			StartSpeed:  1,
			MaxSpeed:    10,
			SpawnY:      -50,
			SpawnMargin: 50,
			MaxLive:     256,
			Colors:      []string{"Green", "Blue", "Red", "Orange", "Yellow"},
		},
		Triangles: TriangleConfig{
			Size:        30,
			SpawnChance: 0.01,
			SpawnY:      -30,
			SpawnMargin: 30,
			MaxLive:     64,
		},
		Health: HealthConfig{
			Max:           100,
			Damage:        25,
			Regen:         25,
			RegenInterval: 5 * time.Second,
		},
		Progression: ProgressionConfig{
			BackgroundInterval: 5 * time.Second,
			LevelInterval:      10 * time.Second,
			SpeedStep:          1,
		},
		Hatch: HatchConfig{
			PerPickup: 10,
			Goal:      100,
		},
		Score: ScoreConfig{
			Start:  100,
			Lambda: 0.00254,
		},
		Timing: TimingConfig{
			ReferenceFPS:  60,
			MaxFrameDelta: 100 * time.Millisecond,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
