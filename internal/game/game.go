package game

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/egg-hatch/internal/clock"
	"github.com/vovakirdan/egg-hatch/internal/config"
	"github.com/vovakirdan/egg-hatch/internal/core"
	"github.com/vovakirdan/egg-hatch/internal/palette"
)

// Outcome is how a round ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeLost
	OutcomeWon
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeLost:
		return "lost"
	case OutcomeWon:
		return "won"
	default:
		return "playing"
	}
}

// Game is the round controller. It owns the round state and runs the
// per-frame sequence. Round timers run on simulated time, which only
// advances while the round is neither paused nor over.
type Game struct {
	cfg   config.Config
	clk   clock.Clock
	field Bounds

	rng         *rand.Rand
	spawner     *Spawner
	progression *Progression

	rt      core.RuntimeConfig
	egg     Egg
	round   Round
	now     time.Duration // Simulated round time
	last    time.Time     // Wall time of the previous step
	tick    uint64
	score   float64
	paused  bool
	outcome Outcome
}

// New creates a game using cfg and reading frame deltas from clk.
// Call Reset before the first Step.
func New(cfg config.Config, clk clock.Clock) *Game {
	if clk == nil {
		clk = clock.System()
	}
	return &Game{
		cfg:   cfg,
		clk:   clk,
		field: Bounds{W: cfg.Playfield.Width, H: cfg.Playfield.Height},
	}
}

// Config returns the configuration the game runs with.
func (g *Game) Config() config.Config {
	return g.cfg
}

// Reset starts a fresh round with the given egg color.
func (g *Game) Reset(rt core.RuntimeConfig, eggColor core.Color) {
	g.rt = rt
	g.rng = rand.New(rand.NewSource(rt.Seed)) //#nosec G404 -- game randomness, not security
	g.spawner = NewSpawner(g.rng, g.cfg, palette.Colors(g.cfg.Obstacles.Colors))
	g.progression = NewProgression(g.rng, g.cfg, palette.Backgrounds())

	g.egg = NewEgg(g.cfg.Egg, g.field, eggColor)
	g.round = NewRound(g.cfg, g.progression.Background())
	g.now = 0
	g.last = g.clk.Now()
	g.tick = 0
	g.score = Score(0, g.cfg.Score)
	g.paused = false
	g.outcome = OutcomeNone
}

// Step runs one frame. The frame length is the wall time since the
// previous step, clamped to timing.max_frame_delta.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	wall := g.clk.Now()
	dt := wall.Sub(g.last)
	g.last = wall

	if g.outcome != OutcomeNone {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	dt = max(0, min(dt, g.cfg.Timing.MaxFrameDelta))
	scale := float64(dt) / float64(g.cfg.Timing.ReferenceFrame())
	g.now += dt
	g.round.Elapsed = g.now
	g.tick++

	// 1. Background, level and speed timers
	events := g.progression.Advance(&g.round, g.now)

	// 2. Spawn
	g.spawner.Spawn(&g.round, scale)

	// 3. Move and drop entities that left the playfield
	g.round.Move(scale, g.field.H)

	// 4. Collisions, health and pickups
	hit, pickups := g.collide(g.now)
	if hit {
		events = append(events, core.EventCollision)
	}
	if g.round.Regenerate(g.now, hit) {
		events = append(events, core.EventRegen)
	}
	for range pickups {
		events = append(events, core.EventPickup)
	}

	// 5. Player input and invincibility decay
	g.egg.Move(in, scale, g.field)
	g.egg.UpdateInvincibility(g.now)

	// 6. Score
	g.score = Score(g.now, g.cfg.Score)

	// 7. Terminal conditions; a depleted egg loses even if it hatched
	switch {
	case g.round.Lost():
		g.outcome = OutcomeLost
		events = append(events, core.EventLost)
	case g.round.Hatched():
		g.outcome = OutcomeWon
		events = append(events, core.EventWon)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.outcome != OutcomeNone,
		Won:      g.outcome == OutcomeWon,
		Paused:   g.paused,
	}
}

// Outcome returns how the round ended, or OutcomeNone while it runs.
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// Elapsed returns the simulated round time.
func (g *Game) Elapsed() time.Duration {
	return g.now
}
