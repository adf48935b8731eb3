// Package flow is the screen state machine: title, color selection, ready,
// playing, and the two end screens. Input handlers produce Commands; the
// machine decides which transitions are legal.
package flow

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/egg-hatch/internal/palette"
)

// ErrInvalidTransition is returned when a command does not apply to the
// current state.
var ErrInvalidTransition = errors.New("invalid transition")

// State is a screen of the game.
type State int

const (
	StateTitle State = iota
	StateColorSelect
	StateReady
	StatePlaying
	StateLost
	StateWon
	StateTerminated
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateTitle:
		return "title"
	case StateColorSelect:
		return "color-select"
	case StateReady:
		return "ready"
	case StatePlaying:
		return "playing"
	case StateLost:
		return "lost"
	case StateWon:
		return "won"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Command is a request from the presentation layer.
type Command interface {
	command()
}

// Start leaves the title or ready screen.
type Start struct{}

// SetColor picks the egg color on the selection screen.
type SetColor struct {
	Color palette.Named
}

// Restart leaves an end screen for color selection.
type Restart struct{}

// Quit terminates from any screen.
type Quit struct{}

func (Start) command()    {}
func (SetColor) command() {}
func (Restart) command()  {}
func (Quit) command()     {}

// Outcome is how a round finished.
type Outcome int

const (
	Lost Outcome = iota
	Won
)

// Machine tracks the current screen and the chosen egg color.
type Machine struct {
	state State
	egg   palette.Named
}

// New returns a machine on the title screen with the default egg color.
func New() *Machine {
	return &Machine{state: StateTitle, egg: palette.Default}
}

// State returns the current screen.
func (m *Machine) State() State {
	return m.state
}

// EggColor returns the chosen egg color.
func (m *Machine) EggColor() palette.Named {
	return m.egg
}

// Apply runs a command and returns the new state. Illegal commands leave
// the machine untouched.
func (m *Machine) Apply(cmd Command) (State, error) {
	if _, ok := cmd.(Quit); ok && m.state != StateTerminated {
		m.state = StateTerminated
		return m.state, nil
	}

	switch c := cmd.(type) {
	case Start:
		switch m.state {
		case StateTitle:
			m.state = StateColorSelect
			return m.state, nil
		case StateReady:
			m.state = StatePlaying
			return m.state, nil
		}
	case SetColor:
		if m.state == StateColorSelect {
			m.egg = c.Color
			m.state = StateReady
			return m.state, nil
		}
	case Restart:
		if m.state == StateLost || m.state == StateWon {
			m.egg = palette.Default
			m.state = StateColorSelect
			return m.state, nil
		}
	}

	return m.state, fmt.Errorf("%w: %T in state %s", ErrInvalidTransition, cmd, m.state)
}

// Finish ends the round being played.
func (m *Machine) Finish(o Outcome) (State, error) {
	if m.state != StatePlaying {
		return m.state, fmt.Errorf("%w: finish in state %s", ErrInvalidTransition, m.state)
	}
	if o == Won {
		m.state = StateWon
	} else {
		m.state = StateLost
	}
	return m.state, nil
}
