package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/egg-hatch/internal/audio"
	"github.com/vovakirdan/egg-hatch/internal/audio/output"
	"github.com/vovakirdan/egg-hatch/internal/core"
	"github.com/vovakirdan/egg-hatch/internal/platform/tui"
	"github.com/vovakirdan/egg-hatch/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a session",
	Long: `Start a session on the title screen.

Controls:
  Arrows/WASD  - Move the egg (and the color cursor)
  Enter/Space  - Confirm
  P/Esc        - Pause
  R            - Restart (after a round)
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower circles, more triangles
  normal - The standard constants
  hard   - Faster circles, fewer triangles
  fixed  - Circle speed never increases

Examples:
  egghatch play
  egghatch play --difficulty easy
  egghatch play --config ./my-egghatch.yaml --mute`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, logCloser, err := newLogger()
	if err != nil {
		return err
	}
	defer logCloser.Close()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Round history is optional; the game runs without it
	store, err := storage.Open()
	if err != nil {
		logger.Warn("round history disabled", "err", err)
		store = nil
	}

	var player audio.Player = audio.Nop{}
	if !flagMute {
		player = output.New(logger)
	}

	runErr := tui.Run(tui.Options{
		Config:  cfg,
		Runtime: rt,
		Store:   store,
		Audio:   player,
		Logger:  logger,
	})

	player.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
