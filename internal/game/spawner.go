package game

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/egg-hatch/internal/config"
	"github.com/vovakirdan/egg-hatch/internal/core"
)

// Spawner rolls for new obstacles and triangles each frame.
type Spawner struct {
	rng       *rand.Rand
	obstacles config.ObstacleConfig
	triangles config.TriangleConfig
	colors    []core.Color
	width     float64
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng *rand.Rand, cfg config.Config, colors []core.Color) *Spawner {
	return &Spawner{
		rng:       rng,
		obstacles: cfg.Obstacles,
		triangles: cfg.Triangles,
		colors:    colors,
		width:     cfg.Playfield.Width,
	}
}

// ScaledChance converts a per-reference-frame probability into the
// probability of at least one success over scale reference frames.
func ScaledChance(p, scale float64) float64 {
	switch {
	case p <= 0 || scale <= 0:
		return 0
	case p >= 1:
		return 1
	}
	return 1 - math.Pow(1-p, scale)
}

// Spawn rolls once for an obstacle and once for a triangle, both at the
// round's current speed. Spawns beyond max_live are dropped.
func (s *Spawner) Spawn(r *Round, scale float64) {
	if s.rng.Float64() < ScaledChance(s.obstacles.SpawnChance, scale) {
		o := s.obstacle(r.Speed)
		if s.obstacles.MaxLive == 0 || len(r.Obstacles) < s.obstacles.MaxLive {
			r.Obstacles = append(r.Obstacles, o)
		}
	}

	if s.rng.Float64() < ScaledChance(s.triangles.SpawnChance, scale) {
		t := s.triangle(r.Speed)
		if s.triangles.MaxLive == 0 || len(r.Triangles) < s.triangles.MaxLive {
			r.Triangles = append(r.Triangles, t)
		}
	}
}

func (s *Spawner) obstacle(speed float64) Obstacle {
	span := s.obstacles.MaxSize - s.obstacles.MinSize + 1
	return Obstacle{
		Pos:   core.Vec{X: s.rng.Float64() * math.Max(0, s.width-s.obstacles.SpawnMargin), Y: s.obstacles.SpawnY},
		Size:  float64(s.obstacles.MinSize + s.rng.Intn(span)),
		Speed: speed,
		Color: s.colors[s.rng.Intn(len(s.colors))],
	}
}

func (s *Spawner) triangle(speed float64) Triangle {
	return Triangle{
		Pos:   core.Vec{X: s.rng.Float64() * math.Max(0, s.width-s.triangles.SpawnMargin), Y: s.triangles.SpawnY},
		Size:  float64(s.triangles.Size),
		Speed: speed,
	}
}
