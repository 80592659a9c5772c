package main

import (
	"fmt"
	"os"
	"os/user"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/game"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the game at the title screen.

Controls:
  Enter          - Play
  Space/Up/W     - Flap (also starts or restarts)
  P              - Pause / continue
  C              - Continue
  L/Esc          - Leave to the title screen (paused or game over)
  R              - Restart (after game over)
  Tab            - Scoreboard (title screen)
  Ctrl+S         - Save a screenshot to ~/.flappy/screenshots
  Q/Ctrl+C       - Quit

Examples:
  flappy play
  flappy play --seed 42
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	highScore, err := storage.NewHighScoreFile(flagHighScore)
	if err != nil {
		return err
	}

	// Get terminal size before the first resize message
	width, height := 80, 24
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
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
		// Continue without history - the game still works
		store = nil
	}

	machine := game.NewMachine(cfg, rt, highScore, game.WithLogger(log.Default()))
	log.Debug("starting", "seed", rt.Seed, "fps", rt.TickRate, "highscore", highScore.Path())

	runErr := tui.Run(machine, store, rt, playerName())

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}
	return nil
}

// playerName is the name recorded with local runs.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "player"
}
