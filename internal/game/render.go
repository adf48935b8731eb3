package game

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/egg-hatch/internal/core"
	"github.com/vovakirdan/egg-hatch/internal/palette"
)

// Visual characters for rendering
const (
	FillChar     = '█'
	SmallChar    = '●'
	TriangleChar = '▼'
)

// viewport maps logical playfield coordinates onto screen cells.
type viewport struct {
	sx, sy float64 // Logical units per cell
}

func newViewport(field Bounds, dst *core.Screen) viewport {
	return viewport{
		sx: field.W / float64(max(1, dst.Width())),
		sy: field.H / float64(max(1, dst.Height())),
	}
}

// cellCenter returns the logical position of the center of cell (x, y).
func (v viewport) cellCenter(x, y int) core.Vec {
	return core.Vec{X: (float64(x) + 0.5) * v.sx, Y: (float64(y) + 0.5) * v.sy}
}

// cellOf returns the cell containing a logical position.
func (v viewport) cellOf(p core.Vec) (int, int) {
	return int(math.Floor(p.X / v.sx)), int(math.Floor(p.Y / v.sy))
}

// fillCircle paints every cell whose center lies inside the circle.
// Circles smaller than a cell still show up as a single dot.
func (v viewport) fillCircle(dst *core.Screen, c core.Vec, r float64, color core.Color) {
	x0, y0 := v.cellOf(core.Vec{X: c.X - r, Y: c.Y - r})
	x1, y1 := v.cellOf(core.Vec{X: c.X + r, Y: c.Y + r})
	painted := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if v.cellCenter(x, y).DistSq(c) < r*r {
				dst.SetCell(x, y, core.Cell{Rune: FillChar, Fg: color, Bg: color})
				painted = true
			}
		}
	}
	if !painted {
		cx, cy := v.cellOf(c)
		dst.SetStyled(cx, cy, SmallChar, color)
	}
}

// fillTriangle paints a point-down triangle filling the square at pos.
func (v viewport) fillTriangle(dst *core.Screen, pos core.Vec, size float64, color core.Color) {
	x0, y0 := v.cellOf(pos)
	x1, y1 := v.cellOf(core.Vec{X: pos.X + size, Y: pos.Y + size})
	painted := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			p := v.cellCenter(x, y)
			depth := (p.Y - pos.Y) / size // 0 at the base, 1 at the tip
			if depth < 0 || depth > 1 {
				continue
			}
			half := size / 2 * (1 - depth)
			if math.Abs(p.X-(pos.X+size/2)) <= half {
				dst.SetCell(x, y, core.Cell{Rune: FillChar, Fg: color, Bg: color})
				painted = true
			}
		}
	}
	if !painted {
		cx, cy := v.cellOf(core.Vec{X: pos.X + size/2, Y: pos.Y + size/2})
		dst.SetStyled(cx, cy, TriangleChar, color)
	}
}

// Render draws the current round to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	bg := g.round.Background
	dst.FillBackground(bg)
	v := newViewport(g.field, dst)

	for _, o := range g.round.Obstacles {
		if o.Camouflaged(bg) {
			continue
		}
		v.fillCircle(dst, o.Center(), o.Size/2, o.Color)
	}

	for _, t := range g.round.Triangles {
		v.fillTriangle(dst, t.Pos, t.Size, palette.Triangle)
	}

	eggColor := g.egg.Color
	if g.egg.Flashing(g.now) {
		eggColor = core.ColorWhite
	}
	v.fillCircle(dst, g.egg.Pos, g.egg.Radius, eggColor)

	g.drawHUD(dst, TextColor(bg))

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawHUD draws health, hatch progress and score on the left, time in the
// middle and the level on the right.
func (g *Game) drawHUD(dst *core.Screen, fg core.Color) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Health: %d%%", g.round.Health), fg)
	dst.DrawTextColored(1, 1, fmt.Sprintf("Hatch Progress: %d%%", g.round.Hatch), fg)
	dst.DrawTextColored(1, 2, fmt.Sprintf("Score: %.3f", g.score), fg)

	timeText := fmt.Sprintf("Time: %.3fs", g.now.Seconds())
	dst.DrawTextColored((dst.Width()-utf8.RuneCountInString(timeText))/2, 0, timeText, fg)

	levelText := fmt.Sprintf("Level %d", g.round.Level)
	dst.DrawTextColored(dst.Width()-utf8.RuneCountInString(levelText)-1, 0, levelText, fg)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.SetCell(x, y, core.Cell{Rune: ' ', Fg: core.ColorWhite, Bg: core.ColorBlack})
		}
	}
	dst.DrawBox(box)

	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}

// TextColor picks black or white text, whichever reads better on bg.
func TextColor(bg core.Color) core.Color {
	if bg == core.ColorDefault {
		return core.ColorDefault
	}
	r, g, b := bg.Channels()
	lum := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
	if lum < 110 {
		return core.ColorWhite
	}
	return core.ColorBlack
}
