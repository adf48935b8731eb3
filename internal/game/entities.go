package game

import "github.com/vovakirdan/egg-hatch/internal/core"

// Obstacle is a falling circle. Pos is the top-left of its bounding square.
// Speed is captured at spawn and never changes.
type Obstacle struct {
	Pos   core.Vec
	Size  float64
	Speed float64
	Color core.Color
}

// Center returns the center of the obstacle's circle.
func (o Obstacle) Center() core.Vec {
	return o.Pos.Add(half(o.Size))
}

// Camouflaged reports whether the obstacle blends into the background.
// Camouflaged obstacles neither fall nor get drawn, but still hurt.
func (o Obstacle) Camouflaged(bg core.Color) bool {
	return o.Color == bg
}

// Triangle is a falling hatch pickup, drawn point-down inside its square.
type Triangle struct {
	Pos   core.Vec
	Size  float64
	Speed float64
}

// Center returns the center of the triangle's bounding square.
func (t Triangle) Center() core.Vec {
	return t.Pos.Add(half(t.Size))
}

func half(size float64) core.Vec {
	return core.Vec{X: size / 2, Y: size / 2}
}
