package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/egg-hatch/internal/audio"
	"github.com/vovakirdan/egg-hatch/internal/clock"
	"github.com/vovakirdan/egg-hatch/internal/config"
	"github.com/vovakirdan/egg-hatch/internal/core"
	"github.com/vovakirdan/egg-hatch/internal/flow"
	"github.com/vovakirdan/egg-hatch/internal/game"
	"github.com/vovakirdan/egg-hatch/internal/storage"
)

// Options configures the front end.
type Options struct {
	Config        config.Config
	Runtime       core.RuntimeConfig
	Store         *storage.Store // Optional session history
	Audio         audio.Player   // Nil plays nothing
	Logger        *log.Logger    // Nil discards
	Clock         clock.Clock    // Nil uses the system clock
	HoldWindow    time.Duration  // Zero uses DefaultHoldWindow
	ScreenshotDir string         // Empty uses the OS temp dir
}

// Model is the Bubble Tea model driving the screen flow and the round.
type Model struct {
	flow     *flow.Machine
	game     *game.Game
	screen   *core.Screen
	renderer *renderer
	held     *heldKeys
	pending  *core.InputFrame // One-shot actions for the next frame
	store    *storage.Store
	player   audio.Player
	logger   *log.Logger
	clk      clock.Clock
	keys     KeyMap
	help     help.Model
	history  table.Model

	config        core.RuntimeConfig
	baseSeed      int64
	rounds        int64
	screenshotDir string

	width, height int
	colorCursor   int
	endCursor     int
	last          game.Snapshot
	best          float64
	stats         storage.SessionStats
	notice        string
	quitting      bool
}

// NewModel creates a new Bubble Tea model on the title screen.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		def := core.DefaultConfig()
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}

	baseSeed := cfg.Seed
	// Use time-based seed if not specified
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	player := opts.Audio
	if player == nil {
		player = audio.Nop{}
	}
	clk := opts.Clock
	if clk == nil {
		clk = clock.System()
	}
	window := opts.HoldWindow
	if window <= 0 {
		window = DefaultHoldWindow
	}
	dir := opts.ScreenshotDir
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "egghatch-screenshots")
	}

	pending := core.NewInputFrame()
	return Model{
		flow:          flow.New(),
		game:          game.New(opts.Config, clk),
		screen:        core.NewScreen(cfg.ScreenW, cfg.ScreenH-1),
		renderer:      newRenderer(),
		held:          newHeldKeys(window),
		pending:       &pending,
		store:         opts.Store,
		player:        player,
		logger:        logger,
		clk:           clk,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		history:       newHistoryTable(),
		config:        cfg,
		baseSeed:      baseSeed,
		screenshotDir: dir,
		width:         cfg.ScreenW,
		height:        cfg.ScreenH,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// State returns the current screen.
func (m Model) State() flow.State {
	return m.flow.State()
}

// apply runs a flow command and logs the transition.
func (m *Model) apply(cmd flow.Command) bool {
	from := m.flow.State()
	to, err := m.flow.Apply(cmd)
	if err != nil {
		m.logger.Debug("ignored command", "err", err)
		return false
	}
	m.logger.Debug("screen", "from", from, "to", to)
	return true
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		return m.quit()
	}

	switch m.flow.State() {
	case flow.StateTitle:
		if action == core.ActionConfirm {
			m.apply(flow.Start{})
		}

	case flow.StateColorSelect:
		switch action {
		case core.ActionUp:
			m.colorCursor = moveCursor(m.colorCursor, 0, -1)
		case core.ActionDown:
			m.colorCursor = moveCursor(m.colorCursor, 0, 1)
		case core.ActionLeft:
			m.colorCursor = moveCursor(m.colorCursor, -1, 0)
		case core.ActionRight:
			m.colorCursor = moveCursor(m.colorCursor, 1, 0)
		case core.ActionConfirm:
			m.apply(flow.SetColor{Color: paletteAt(m.colorCursor)})
		}

	case flow.StateReady:
		if action == core.ActionConfirm && m.apply(flow.Start{}) {
			m.startRound()
		}

	case flow.StatePlaying:
		switch action {
		case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
			m.held.Press(action, m.clk.Now())
		case core.ActionPause:
			m.pending.Set(core.ActionPause)
		}

	case flow.StateLost, flow.StateWon:
		switch action {
		case core.ActionUp, core.ActionDown:
			m.endCursor = 1 - m.endCursor
		case core.ActionRestart:
			m.restart()
		case core.ActionConfirm:
			if m.endCursor == 1 {
				return m.quit()
			}
			m.restart()
		}
	}

	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.apply(flow.Quit{})
	m.quitting = true
	return m, tea.Quit
}

func (m *Model) restart() {
	if m.apply(flow.Restart{}) {
		m.colorCursor = 0
		m.endCursor = 0
		m.notice = ""
	}
}

// handleResize processes window resize events. The playfield is logical,
// so a resize never restarts the round.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(1, msg.Height-1)) // Last row is the help bar
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one frame while a round is being played.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.flow.State() != flow.StatePlaying {
		return m, tickCmd(m.config.TickRate)
	}

	in := m.held.Frame(m.clk.Now())
	if m.pending.Has(core.ActionPause) {
		in.Set(core.ActionPause)
	}
	m.pending.Clear()

	result := m.game.Step(in)
	for _, e := range result.Events {
		switch e {
		case core.EventCollision:
			m.player.Play(audio.SoundCollision)
		case core.EventPickup:
			m.player.Play(audio.SoundPickup)
		case core.EventWon:
			m.player.Play(audio.SoundHatch)
		case core.EventLevelUp:
			m.logger.Debug("level up", "level", m.game.Snapshot().Level)
		}
	}

	if result.State.GameOver {
		m.finishRound(result.State.Won)
	}

	return m, tickCmd(m.config.TickRate)
}

// startRound resets the game with the chosen egg color.
func (m *Model) startRound() {
	seed := m.baseSeed + m.rounds
	m.rounds++

	rt := m.config
	rt.Seed = seed
	egg := m.flow.EggColor()
	m.game.Reset(rt, egg.Color)
	m.held.Reset()
	m.pending.Clear()
	m.notice = ""
	m.player.Music(true)
	m.logger.Info("round started", "egg", egg.Name, "seed", seed)
}

// finishRound moves to an end screen and records the round.
func (m *Model) finishRound(won bool) {
	outcome := flow.Lost
	if won {
		outcome = flow.Won
	}
	if _, err := m.flow.Finish(outcome); err != nil {
		m.logger.Error("cannot finish round", "err", err)
		return
	}
	m.player.Music(false)

	m.last = m.game.Snapshot()
	m.endCursor = 0
	m.logger.Info("round finished",
		"outcome", m.last.Outcome,
		"score", m.last.Score,
		"level", m.last.Level,
		"elapsed", m.last.Elapsed.Round(time.Millisecond))

	if m.store == nil {
		return
	}
	_, err := m.store.SaveRound(storage.RoundRecord{
		EggColor: m.flow.EggColor().Name,
		Outcome:  m.last.Outcome,
		Score:    m.last.Score,
		Level:    m.last.Level,
		Hatch:    m.last.Hatch,
		Elapsed:  m.last.Elapsed,
	})
	if err != nil {
		m.logger.Warn("cannot record round", "err", err)
		return
	}
	m.refreshHistory()
}

func (m *Model) refreshHistory() {
	rounds, err := m.store.RecentRounds(maxHistory)
	if err != nil {
		m.logger.Warn("cannot load history", "err", err)
		return
	}
	m.history.SetRows(historyRows(rounds))

	best, err := m.store.BestScore()
	if err != nil {
		m.logger.Warn("cannot load best score", "err", err)
		return
	}
	m.best = best

	stats, err := m.store.Stats()
	if err != nil {
		m.logger.Warn("cannot load session stats", "err", err)
		return
	}
	m.stats = stats
}

// saveScreenshot saves the current frame as plain text.
func (m *Model) saveScreenshot() {
	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot dir", "err", err)
		return
	}

	m.game.Render(m.screen)
	timestamp := time.Now().Format("20060102_150405.000")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("egghatch_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.notice = "saved " + path
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.flow.State() {
	case flow.StateTitle:
		return m.titleView()
	case flow.StateColorSelect:
		return m.colorView()
	case flow.StateReady:
		return m.readyView()
	case flow.StatePlaying:
		return m.playView()
	case flow.StateLost:
		return m.endView(false)
	case flow.StateWon:
		return m.endView(true)
	}
	return ""
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
