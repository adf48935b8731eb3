package game

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/egg-hatch/internal/clock"
	"github.com/vovakirdan/egg-hatch/internal/config"
	"github.com/vovakirdan/egg-hatch/internal/core"
)

const frame = time.Second / 60

var testRuntime = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 12345}

// quietConfig disables spawning so tests place every entity by hand.
func quietConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.Obstacles.SpawnChance = 0
	cfg.Triangles.SpawnChance = 0
	return cfg
}

func newTestGame(cfg config.Config) (*Game, *clock.Manual) {
	clk := clock.NewManual(time.Unix(0, 0))
	g := New(cfg, clk)
	g.Reset(testRuntime, core.RGB(0, 255, 0))
	return g, clk
}

func step(g *Game, clk *clock.Manual, in core.InputFrame) core.StepResult {
	clk.Advance(frame)
	return g.Step(in)
}

func TestGameReset(t *testing.T) {
	g, _ := newTestGame(config.DefaultConfig())

	snap := g.Snapshot()
	if snap.Health != 100 || snap.Hatch != 0 || snap.Level != 1 || snap.Speed != 1 {
		t.Errorf("unexpected initial round: %+v", snap)
	}
	if snap.Score != 100 {
		t.Errorf("initial score = %v, expected 100", snap.Score)
	}
	if g.State().GameOver || g.Outcome() != OutcomeNone {
		t.Error("a fresh round should not be over")
	}
}

func TestObstacleHit(t *testing.T) {
	g, clk := newTestGame(quietConfig())
	g.round.Obstacles = append(g.round.Obstacles,
		Obstacle{Pos: core.Vec{X: 170, Y: 270}, Size: 60, Speed: 1, Color: core.RGB(255, 0, 0)},
		Obstacle{Pos: core.Vec{X: 180, Y: 280}, Size: 40, Speed: 1, Color: core.RGB(0, 0, 255)},
	)
	g.round.Background = core.ColorBlack

	res := step(g, clk, core.NewInputFrame())

	if !res.Has(core.EventCollision) {
		t.Error("expected collision event")
	}
	if g.round.Health != 75 {
		t.Errorf("health = %d, expected 75 after one hit from two overlapping obstacles", g.round.Health)
	}
	if !g.egg.Invincible {
		t.Fatal("egg should be invincible after a hit")
	}
	if want := g.Elapsed() + 2*time.Second; g.egg.Expiry() != want {
		t.Errorf("expiry = %v, expected %v", g.egg.Expiry(), want)
	}

	// Overlap continues but the egg is invincible
	for i := 0; i < 30; i++ {
		res = step(g, clk, core.NewInputFrame())
		if res.Has(core.EventCollision) {
			t.Fatalf("frame %d: invincible egg took damage", i)
		}
	}
	if g.round.Health != 75 {
		t.Errorf("health = %d, expected 75", g.round.Health)
	}
	if len(g.round.Obstacles) != 2 {
		t.Error("obstacles should survive contact")
	}
}

func TestCamouflagedObstacleStillHurts(t *testing.T) {
	g, clk := newTestGame(quietConfig())
	bg := core.RGB(255, 0, 0)
	g.round.Background = bg
	g.round.Obstacles = append(g.round.Obstacles,
		Obstacle{Pos: core.Vec{X: 170, Y: 270}, Size: 60, Speed: 1, Color: bg})

	step(g, clk, core.NewInputFrame())

	if g.round.Health != 75 {
		t.Errorf("health = %d, expected 75", g.round.Health)
	}
	if g.round.Obstacles[0].Pos.Y != 270 {
		t.Errorf("camouflaged obstacle moved to y=%v", g.round.Obstacles[0].Pos.Y)
	}
}

func TestTrianglePickupWins(t *testing.T) {
	g, clk := newTestGame(quietConfig())
	g.round.Hatch = 95
	g.round.Triangles = append(g.round.Triangles,
		Triangle{Pos: core.Vec{X: 185, Y: 285}, Size: 30, Speed: 1})

	res := step(g, clk, core.NewInputFrame())

	if len(g.round.Triangles) != 0 {
		t.Error("triangle should be removed on pickup")
	}
	if g.round.Hatch != 105 {
		t.Errorf("hatch = %d, expected 105", g.round.Hatch)
	}
	if !res.Has(core.EventPickup) || !res.Has(core.EventWon) {
		t.Errorf("expected pickup and won events, got %v", res.Events)
	}
	if !res.State.GameOver || !res.State.Won || g.Outcome() != OutcomeWon {
		t.Errorf("round should be won: %+v", res.State)
	}
}

func TestPickupWhileInvincible(t *testing.T) {
	g, clk := newTestGame(quietConfig())
	g.egg.BecomeInvincible(0, 2*time.Second)
	g.round.Triangles = append(g.round.Triangles,
		Triangle{Pos: core.Vec{X: 185, Y: 285}, Size: 30, Speed: 1})

	step(g, clk, core.NewInputFrame())

	if g.round.Hatch != 10 {
		t.Errorf("hatch = %d, expected 10", g.round.Hatch)
	}
}

func TestLossTakesPrecedence(t *testing.T) {
	g, clk := newTestGame(quietConfig())
	g.round.Health = 25
	g.round.Hatch = 95
	g.round.Obstacles = append(g.round.Obstacles,
		Obstacle{Pos: core.Vec{X: 170, Y: 270}, Size: 60, Speed: 1, Color: core.RGB(255, 0, 0)})
	g.round.Triangles = append(g.round.Triangles,
		Triangle{Pos: core.Vec{X: 185, Y: 285}, Size: 30, Speed: 1})
	g.round.Background = core.ColorBlack

	res := step(g, clk, core.NewInputFrame())

	if g.Outcome() != OutcomeLost || !res.Has(core.EventLost) || res.Has(core.EventWon) {
		t.Errorf("expected a loss, got outcome %v events %v", g.Outcome(), res.Events)
	}

	// A finished round ignores further steps
	before := g.Snapshot()
	step(g, clk, core.NewInputFrame())
	after := g.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("finished round changed after Step")
	}
}

func TestLevelUpAfterTenSeconds(t *testing.T) {
	g, clk := newTestGame(quietConfig())

	levelUps := 0
	for i := 0; i < 100; i++ {
		clk.Advance(100 * time.Millisecond)
		if g.Step(core.NewInputFrame()).Has(core.EventLevelUp) {
			levelUps++
		}
	}

	if g.Elapsed() != 10*time.Second {
		t.Fatalf("elapsed = %v, expected 10s", g.Elapsed())
	}
	if levelUps != 1 || g.round.Level != 2 || g.round.Speed != 2 {
		t.Errorf("level-ups %d, level %d, speed %v; expected 1, 2, 2", levelUps, g.round.Level, g.round.Speed)
	}
}

func TestRegenerationInGame(t *testing.T) {
	g, clk := newTestGame(quietConfig())
	g.round.Health = 50

	regens := 0
	for i := 0; i < 50; i++ {
		clk.Advance(100 * time.Millisecond)
		if g.Step(core.NewInputFrame()).Has(core.EventRegen) {
			regens++
		}
	}

	if regens != 1 || g.round.Health != 75 {
		t.Errorf("regens %d health %d, expected 1 and 75", regens, g.round.Health)
	}
}

func TestFrameDeltaClamped(t *testing.T) {
	g, clk := newTestGame(quietConfig())

	clk.Advance(5 * time.Second)
	g.Step(core.NewInputFrame())

	if g.Elapsed() != 100*time.Millisecond {
		t.Errorf("elapsed = %v, expected the 100ms clamp", g.Elapsed())
	}
}

func TestPauseFreezesTime(t *testing.T) {
	g, clk := newTestGame(quietConfig())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	step(g, clk, core.NewInputFrame())
	elapsed := g.Elapsed()

	res := step(g, clk, pause)
	if !res.State.Paused {
		t.Fatal("expected paused state")
	}

	for i := 0; i < 10; i++ {
		clk.Advance(time.Second)
		g.Step(core.NewInputFrame())
	}
	if g.Elapsed() != elapsed {
		t.Errorf("elapsed moved while paused: %v -> %v", elapsed, g.Elapsed())
	}

	res = step(g, clk, pause)
	if res.State.Paused {
		t.Fatal("expected unpaused state")
	}
	if g.Elapsed() != elapsed+frame {
		t.Errorf("elapsed = %v, expected %v", g.Elapsed(), elapsed+frame)
	}
}

func TestEggMovesWithInput(t *testing.T) {
	g, clk := newTestGame(quietConfig())

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	for i := 0; i < 10; i++ {
		step(g, clk, in)
	}

	if g.egg.Pos.X != 250 {
		t.Errorf("egg x = %v, expected 250", g.egg.Pos.X)
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 900)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i%90 < 30:
			inputs[i].Set(core.ActionRight)
		case i%90 < 60:
			inputs[i].Set(core.ActionUp)
		default:
			inputs[i].Set(core.ActionLeft)
			inputs[i].Set(core.ActionDown)
		}
	}

	run := func() Snapshot {
		g, clk := newTestGame(config.DefaultConfig())
		for _, in := range inputs {
			if step(g, clk, in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Tick != snap2.Tick {
		t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", snap1.Tick, snap2.Tick)
	}
	if snap1.Health < 0 || snap1.Health > 100 {
		t.Errorf("health %d out of range", snap1.Health)
	}
}

func TestInvariantsUnderLoad(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Obstacles.SpawnChance = 0.5
	g, clk := newTestGame(cfg)

	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	in.Set(core.ActionUp)

	for i := 0; i < 3000; i++ {
		step(g, clk, in)
		snap := g.Snapshot()
		if snap.Health < 0 || snap.Health > 100 {
			t.Fatalf("frame %d: health %d", i, snap.Health)
		}
		if snap.EggX < snap.EggRadius || snap.EggX > 800-snap.EggRadius ||
			snap.EggY < snap.EggRadius || snap.EggY > 600-snap.EggRadius {
			t.Fatalf("frame %d: egg at (%v, %v)", i, snap.EggX, snap.EggY)
		}
		if len(snap.Obstacles) > cfg.Obstacles.MaxLive {
			t.Fatalf("frame %d: %d obstacles over cap", i, len(snap.Obstacles))
		}
		if snap.Outcome != "playing" {
			break
		}
	}
}

func TestSnapshotEntities(t *testing.T) {
	g, _ := newTestGame(quietConfig())
	coral := core.RGB(255, 127, 80)
	g.round.Obstacles = append(g.round.Obstacles,
		Obstacle{Pos: core.Vec{X: 100, Y: 50}, Size: 40, Color: coral})
	g.round.Triangles = append(g.round.Triangles,
		Triangle{Pos: core.Vec{X: 300, Y: 20}, Size: 30})

	snap := g.Snapshot()
	if len(snap.Obstacles) != 1 || snap.Obstacles[0] != (ObstacleView{X: 100, Y: 50, Size: 40, Color: coral}) {
		t.Errorf("obstacles = %+v", snap.Obstacles)
	}
	if len(snap.Triangles) != 1 || snap.Triangles[0] != (TriangleView{X: 300, Y: 20, Size: 30}) {
		t.Errorf("triangles = %+v", snap.Triangles)
	}
	if snap.EggColor != core.RGB(0, 255, 0) {
		t.Errorf("egg color = %s", snap.EggColor.Hex())
	}

	// Obstacle color takes part in the hash
	before := snap.Hash()
	g.round.Obstacles[0].Color = core.RGB(0, 0, 255)
	after := g.Snapshot()
	if after.Hash() == before {
		t.Error("changing an obstacle color should change the hash")
	}
}

func TestRender(t *testing.T) {
	g, _ := newTestGame(quietConfig())
	g.round.Background = core.RGB(0, 0, 255)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// Egg at (200, 300) maps to cell (20, 12)
	if c := screen.GetCell(20, 12); c.Bg != core.RGB(0, 255, 0) {
		t.Errorf("egg cell bg = %s, expected green", c.Bg.Hex())
	}
	if c := screen.GetCell(60, 20); c.Bg != core.RGB(0, 0, 255) {
		t.Errorf("background cell bg = %s, expected blue", c.Bg.Hex())
	}
	if row := screen.Row(0); !strings.Contains(row, "Health: 100%") || !strings.Contains(row, "Level 1") {
		t.Errorf("HUD row missing fields: %q", row)
	}
	if row := screen.Row(2); !strings.Contains(row, "Score: 100.000") {
		t.Errorf("score row = %q", row)
	}
}

func TestRenderPauseBox(t *testing.T) {
	g, _ := newTestGame(quietConfig())
	g.paused = true

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// The box is as wide as the longer line plus 4, centered
	if c := screen.GetCell(29, 9).Rune; c != '┌' {
		t.Errorf("top-left corner = %q, expected '┌'", c)
	}
	if c := screen.GetCell(49, 9).Rune; c != '┐' {
		t.Errorf("top-right corner = %q, expected '┐'", c)
	}
	if row := screen.Row(10); !strings.Contains(row, "│      PAUSED       │") {
		t.Errorf("title row = %q", row)
	}
	if row := screen.Row(12); !strings.Contains(row, "│ Press P to resume │") {
		t.Errorf("subtitle row = %q", row)
	}
	if lines := strings.Split(screen.String(), "\n"); lines[10] != screen.Row(10) {
		t.Error("String() should match Row() line by line")
	}
}

func TestRenderHidesCamouflaged(t *testing.T) {
	g, _ := newTestGame(quietConfig())
	bg := core.RGB(255, 0, 0)
	g.round.Background = bg
	g.round.Obstacles = append(g.round.Obstacles,
		Obstacle{Pos: core.Vec{X: 500, Y: 400}, Size: 80, Color: bg})

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// Obstacle center (540, 440) maps to cell (54, 17)
	if c := screen.GetCell(54, 17); c.Rune == FillChar {
		t.Error("camouflaged obstacle should not be drawn")
	}
}

func TestTextColor(t *testing.T) {
	if TextColor(core.RGB(255, 255, 0)) != core.ColorBlack {
		t.Error("yellow background should get black text")
	}
	if TextColor(core.RGB(75, 0, 130)) != core.ColorWhite {
		t.Error("indigo background should get white text")
	}
}
