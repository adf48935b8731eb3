package tui

import (
	"time"

	"github.com/vovakirdan/egg-hatch/internal/core"
)

// DefaultHoldWindow is how long a direction counts as held after its last
// key event. Terminals report presses and auto-repeats but no releases.
const DefaultHoldWindow = 150 * time.Millisecond

var opposite = map[core.Action]core.Action{
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
}

// heldKeys turns key events into a held-direction set.
type heldKeys struct {
	window time.Duration
	last   map[core.Action]time.Time
}

func newHeldKeys(window time.Duration) *heldKeys {
	return &heldKeys{window: window, last: make(map[core.Action]time.Time)}
}

// Press records a key event. Pressing a direction releases its opposite.
func (h *heldKeys) Press(a core.Action, now time.Time) {
	if o, ok := opposite[a]; ok {
		delete(h.last, o)
	}
	h.last[a] = now
}

// Frame returns the directions held at now and forgets stale ones.
func (h *heldKeys) Frame(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for a, t := range h.last {
		if now.Sub(t) > h.window {
			delete(h.last, a)
			continue
		}
		frame.Set(a)
	}
	return frame
}

// Reset releases every key.
func (h *heldKeys) Reset() {
	clear(h.last)
}
