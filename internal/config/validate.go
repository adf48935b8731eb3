package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/egg-hatch/internal/palette"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the configuration can drive a round. All problems
// are reported together.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.Playfield.Width > 0 && c.Playfield.Height > 0, "playfield must have a positive size")
	check(c.Egg.Radius > 0, "egg.radius must be positive")
	check(2*c.Egg.Radius <= c.Playfield.Width && 2*c.Egg.Radius <= c.Playfield.Height,
		"egg (radius %.0f) does not fit the playfield", c.Egg.Radius)
	check(c.Egg.Speed >= 0, "egg.speed must not be negative")
	check(c.Egg.Invincibility >= 0, "egg.invincibility must not be negative")
	check(c.Egg.StartX >= 0 && c.Egg.StartX <= 1 && c.Egg.StartY >= 0 && c.Egg.StartY <= 1,
		"egg.start_x and egg.start_y are fractions in [0, 1]")

	check(c.Obstacles.MinSize > 0 && c.Obstacles.MinSize <= c.Obstacles.MaxSize,
		"obstacles.min_size must be positive and at most max_size")
	check(isProbability(c.Obstacles.SpawnChance), "obstacles.spawn_chance must be in [0, 1]")
	check(c.Obstacles.StartSpeed >= 0, "obstacles.start_speed must not be negative")
	check(c.Obstacles.MaxSpeed == 0 || c.Obstacles.MaxSpeed >= c.Obstacles.StartSpeed,
		"obstacles.max_speed must be 0 or at least start_speed")
	check(c.Obstacles.MaxLive >= 0, "obstacles.max_live must not be negative")
	check(len(c.Obstacles.Colors) > 0, "obstacles.colors must not be empty")
	for _, name := range c.Obstacles.Colors {
		_, ok := palette.ByName(name)
		check(ok, "obstacles.colors: unknown color %q", name)
	}

	check(c.Triangles.Size > 0, "triangles.size must be positive")
	check(isProbability(c.Triangles.SpawnChance), "triangles.spawn_chance must be in [0, 1]")
	check(c.Triangles.MaxLive >= 0, "triangles.max_live must not be negative")

	check(c.Health.Max > 0, "health.max must be positive")
	check(c.Health.Damage >= 0 && c.Health.Regen >= 0, "health.damage and health.regen must not be negative")
	check(c.Health.RegenInterval > 0, "health.regen_interval must be positive")

	check(c.Progression.BackgroundInterval > 0, "progression.background_interval must be positive")
	check(c.Progression.LevelInterval > 0, "progression.level_interval must be positive")
	check(c.Progression.SpeedStep >= 0, "progression.speed_step must not be negative")

	check(c.Hatch.PerPickup > 0 && c.Hatch.Goal > 0, "hatch.per_pickup and hatch.goal must be positive")
	check(c.Score.Lambda >= 0, "score.lambda must not be negative")

	check(c.Timing.ReferenceFPS > 0, "timing.reference_fps must be positive")
	check(c.Timing.MaxFrameDelta > 0, "timing.max_frame_delta must be positive")

	return errors.Join(errs...)
}

func isProbability(p float64) bool {
	return p >= 0 && p <= 1
}
