package game

import (
	"time"

	"github.com/vovakirdan/egg-hatch/internal/core"
)

// Collides reports whether the egg overlaps a square entity of the given
// size centered at center. Both shapes are treated as circles.
func Collides(egg *Egg, center core.Vec, size float64) bool {
	return core.CirclesOverlap(egg.Pos, egg.Radius, center, size/2)
}

// Damage applies one obstacle hit at now. Health never drops below zero.
func (r *Round) Damage(now time.Duration) {
	r.Health -= r.health.Damage
	if r.Health < 0 {
		r.Health = 0
	}
	r.lastHit = now
}

// Regenerate restores health when a full interval has passed since the
// last hit or regeneration and no hit happened this frame. The timestamp
// moves forward even at full health. Reports whether health went up.
func (r *Round) Regenerate(now time.Duration, hit bool) bool {
	if hit || now-r.lastHit < r.health.RegenInterval {
		return false
	}
	r.lastHit = now
	before := r.Health
	r.Health = min(r.health.Max, r.Health+r.health.Regen)
	return r.Health > before
}

// Collect credits one triangle pickup and reports whether the egg hatched.
func (r *Round) Collect() bool {
	r.Hatch += r.hatch.PerPickup
	return r.Hatched()
}

// collide resolves egg contacts for one frame. The first damaging hit makes
// the egg invincible, so later overlaps in the same frame are harmless.
// Obstacles survive contact; triangles are consumed.
func (g *Game) collide(now time.Duration) (hit bool, pickups int) {
	for _, o := range g.round.Obstacles {
		if g.egg.Invincible || !Collides(&g.egg, o.Center(), o.Size) {
			continue
		}
		g.round.Damage(now)
		g.egg.BecomeInvincible(now, g.cfg.Egg.Invincibility)
		hit = true
	}

	triangles := g.round.Triangles[:0]
	for _, t := range g.round.Triangles {
		if Collides(&g.egg, t.Center(), t.Size) {
			g.round.Collect()
			pickups++
			continue
		}
		triangles = append(triangles, t)
	}
	g.round.Triangles = triangles
	return hit, pickups
}
