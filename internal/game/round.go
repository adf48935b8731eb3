package game

import (
	"time"

	"github.com/vovakirdan/egg-hatch/internal/config"
	"github.com/vovakirdan/egg-hatch/internal/core"
)

// Round holds all mutable state of one round. It is discarded on restart.
type Round struct {
	Health     int     // Percent, 0..max
	Hatch      int     // Percent, grows past the goal on the winning pickup
	Level      int     // Starts at 1
	Speed      float64 // Speed given to newly spawned entities
	Background core.Color
	Elapsed    time.Duration

	Obstacles []Obstacle
	Triangles []Triangle

	lastBackground time.Duration
	lastLevelUp    time.Duration
	lastHit        time.Duration

	health config.HealthConfig
	hatch  config.HatchConfig
}

// NewRound creates the state for a fresh round.
func NewRound(cfg config.Config, bg core.Color) Round {
	return Round{
		Health:     cfg.Health.Max,
		Level:      1,
		Speed:      cfg.Obstacles.StartSpeed,
		Background: bg,
		Obstacles:  make([]Obstacle, 0, 32),
		Triangles:  make([]Triangle, 0, 8),
		health:     cfg.Health,
		hatch:      cfg.Hatch,
	}
}

// Move advances live entities and drops those below the playfield.
// Camouflaged obstacles stay frozen in place.
func (r *Round) Move(scale, height float64) {
	obstacles := r.Obstacles[:0]
	for _, o := range r.Obstacles {
		if !o.Camouflaged(r.Background) {
			o.Pos.Y += o.Speed * scale
			if o.Pos.Y > height {
				continue
			}
		}
		obstacles = append(obstacles, o)
	}
	r.Obstacles = obstacles

	triangles := r.Triangles[:0]
	for _, t := range r.Triangles {
		t.Pos.Y += t.Speed * scale
		if t.Pos.Y > height {
			continue
		}
		triangles = append(triangles, t)
	}
	r.Triangles = triangles
}

// LastHit returns the time of the last damaging hit or regeneration.
func (r *Round) LastHit() time.Duration {
	return r.lastHit
}

// Lost reports whether health is depleted.
func (r *Round) Lost() bool {
	return r.Health == 0
}

// Hatched reports whether hatch progress reached the goal.
func (r *Round) Hatched() bool {
	return r.Hatch >= r.hatch.Goal
}
