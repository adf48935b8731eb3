// Package game implements the egg-hatching round: an egg dodges falling
// circles and collects falling triangles until it either runs out of health
// or hatches.
package game

import (
	"math"
	"time"

	"github.com/vovakirdan/egg-hatch/internal/config"
	"github.com/vovakirdan/egg-hatch/internal/core"
)

// Bounds is the logical size of the playfield.
type Bounds struct {
	W, H float64
}

// Egg is the player avatar. Times are simulated round time.
type Egg struct {
	Pos        core.Vec
	Radius     float64
	Speed      float64 // Units per reference frame per axis
	Color      core.Color
	Invincible bool

	expiry  time.Duration
	flashHz float64
}

// NewEgg places an egg at its configured start position.
func NewEgg(cfg config.EggConfig, field Bounds, color core.Color) Egg {
	e := Egg{
		Pos:     core.Vec{X: field.W * cfg.StartX, Y: field.H * cfg.StartY},
		Radius:  cfg.Radius,
		Speed:   cfg.Speed,
		Color:   color,
		flashHz: cfg.FlashHz,
	}
	e.clamp(field)
	return e
}

// Move translates the egg by its speed along every held direction.
// Diagonals are not normalized. An invincible egg cannot move, but its
// position is clamped into the playfield either way.
func (e *Egg) Move(in core.InputFrame, scale float64, field Bounds) {
	if !e.Invincible {
		step := e.Speed * scale
		if in.Has(core.ActionLeft) {
			e.Pos.X -= step
		}
		if in.Has(core.ActionRight) {
			e.Pos.X += step
		}
		if in.Has(core.ActionUp) {
			e.Pos.Y -= step
		}
		if in.Has(core.ActionDown) {
			e.Pos.Y += step
		}
	}
	e.clamp(field)
}

func (e *Egg) clamp(field Bounds) {
	e.Pos.X = core.ClampF(e.Pos.X, e.Radius, field.W-e.Radius)
	e.Pos.Y = core.ClampF(e.Pos.Y, e.Radius, field.H-e.Radius)
}

// BecomeInvincible starts an invincibility window of length d at now.
func (e *Egg) BecomeInvincible(now, d time.Duration) {
	e.Invincible = true
	e.expiry = now + d
}

// UpdateInvincibility ends the window once now is past its expiry.
func (e *Egg) UpdateInvincibility(now time.Duration) {
	if e.Invincible && now > e.expiry {
		e.Invincible = false
	}
}

// Expiry returns when the current invincibility window ends.
func (e *Egg) Expiry() time.Duration {
	return e.expiry
}

// Flashing reports whether an invincible egg shows its flash color at now.
func (e *Egg) Flashing(now time.Duration) bool {
	if !e.Invincible || e.flashHz <= 0 {
		return false
	}
	return int(math.Floor(now.Seconds()*e.flashHz))%2 == 0
}
