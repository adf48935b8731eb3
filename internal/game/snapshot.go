package game

import (
	"math"
	"time"

	"github.com/vovakirdan/egg-hatch/internal/core"
)

// ObstacleView is an obstacle as seen in a Snapshot.
type ObstacleView struct {
	X, Y  float64
	Size  float64
	Color core.Color
}

// TriangleView is a triangle as seen in a Snapshot.
type TriangleView struct {
	X, Y float64
	Size float64
}

// Snapshot is a read-only view of a round for presentation, history and
// determinism checks.
type Snapshot struct {
	Tick       uint64
	Elapsed    time.Duration
	Score      float64
	Health     int
	Hatch      int
	Level      int
	Speed      float64
	Background core.Color
	Outcome    string
	Paused     bool

	EggX, EggY float64
	EggRadius  float64
	EggColor   core.Color
	Invincible bool
	Flashing   bool

	Obstacles []ObstacleView
	Triangles []TriangleView
}

// Snapshot returns the current round as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	obstacles := make([]ObstacleView, len(g.round.Obstacles))
	for i, o := range g.round.Obstacles {
		obstacles[i] = ObstacleView{X: o.Pos.X, Y: o.Pos.Y, Size: o.Size, Color: o.Color}
	}
	triangles := make([]TriangleView, len(g.round.Triangles))
	for i, t := range g.round.Triangles {
		triangles[i] = TriangleView{X: t.Pos.X, Y: t.Pos.Y, Size: t.Size}
	}

	return Snapshot{
		Tick:       g.tick,
		Elapsed:    g.now,
		Score:      g.score,
		Health:     g.round.Health,
		Hatch:      g.round.Hatch,
		Level:      g.round.Level,
		Speed:      g.round.Speed,
		Background: g.round.Background,
		Outcome:    g.outcome.String(),
		Paused:     g.paused,
		EggX:       g.egg.Pos.X,
		EggY:       g.egg.Pos.Y,
		EggRadius:  g.egg.Radius,
		EggColor:   g.egg.Color,
		Invincible: g.egg.Invincible,
		Flashing:   g.egg.Flashing(g.now),
		Obstacles:  obstacles,
		Triangles:  triangles,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Elapsed) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Score)
	h = h*31 + uint64(snap.Health) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Hatch)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)  //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Speed)
	h = h*31 + uint64(uint32(snap.Background)) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.EggX)
	h = h*31 + math.Float64bits(snap.EggY)
	if snap.Invincible {
		h = h*31 + 1
	}

	for _, o := range snap.Obstacles {
		h = h*31 + math.Float64bits(o.X)
		h = h*31 + math.Float64bits(o.Y)
		h = h*31 + math.Float64bits(o.Size)
		h = h*31 + uint64(uint32(o.Color)) //#nosec G115 -- hash computation
	}
	for _, t := range snap.Triangles {
		h = h*31 + math.Float64bits(t.X)
		h = h*31 + math.Float64bits(t.Y)
		h = h*31 + math.Float64bits(t.Size)
	}

	return h
}
