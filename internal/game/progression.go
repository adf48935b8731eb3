package game

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/egg-hatch/internal/config"
	"github.com/vovakirdan/egg-hatch/internal/core"
)

// Progression rotates the background and escalates level and speed.
type Progression struct {
	rng         *rand.Rand
	cfg         config.ProgressionConfig
	maxSpeed    float64
	backgrounds []core.Color
}

// NewProgression creates a progression drawing backgrounds from rng.
func NewProgression(rng *rand.Rand, cfg config.Config, backgrounds []core.Color) *Progression {
	return &Progression{
		rng:         rng,
		cfg:         cfg.Progression,
		maxSpeed:    cfg.Obstacles.MaxSpeed,
		backgrounds: backgrounds,
	}
}

// Background picks a uniformly random background color.
func (p *Progression) Background() core.Color {
	return p.backgrounds[p.rng.Intn(len(p.backgrounds))]
}

// Advance fires the background and level timers that are due at now.
func (p *Progression) Advance(r *Round, now time.Duration) []core.Event {
	var events []core.Event

	if now-r.lastBackground >= p.cfg.BackgroundInterval {
		r.Background = p.Background()
		r.lastBackground = now
		events = append(events, core.EventBackground)
	}

	if now-r.lastLevelUp >= p.cfg.LevelInterval {
		r.Level++
		r.Speed += p.cfg.SpeedStep
		if p.maxSpeed > 0 && r.Speed > p.maxSpeed {
			r.Speed = p.maxSpeed
		}
		r.lastLevelUp = now
		events = append(events, core.EventLevelUp)
	}

	return events
}

// Score returns the decayed score for a round that has run for elapsed,
// rounded to three decimals.
func Score(elapsed time.Duration, cfg config.ScoreConfig) float64 {
	s := cfg.Start * math.Exp(-cfg.Lambda*elapsed.Seconds())
	return math.Round(s*1000) / 1000
}
