package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the high score and the best recorded runs.

Examples:
  flappy scores
  flappy scores --limit 20
  flappy scores -i          # Browse runs in a table
  flappy scores --clear     # Delete the run history`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs interactively")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening run history: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Println("Run history cleared.")
		return nil
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		return tui.RunScoreboard(store, width, height)
	}

	runs, err := store.TopRuns(flagLimit)
	if err != nil {
		return fmt.Errorf("error retrieving runs: %w", err)
	}

	fmt.Println("High Scores - Flappy")
	fmt.Println()

	if best, ok, err := loadHighScore(); err != nil {
		return err
	} else if ok {
		fmt.Printf("High score: %d\n\n", int(best))
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'flappy play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-16s  %-6s  %-7s  %s\n", "Rank", "Player", "Score", "Ticks", "Date")
	fmt.Printf("  %-4s  %-16s  %-6s  %-7s  %s\n", "----", "------", "-----", "-----", "----")

	for i, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-16s  %-6d  %-7d  %s\n", i+1, r.Player, int(r.Score), r.Ticks, dateStr)
	}

	fmt.Println()
	if stats, err := store.Stats(); err == nil {
		fmt.Printf("Runs: %d  Best: %d  Average: %.1f\n", stats.Runs, int(stats.BestScore), stats.AvgScore)
	}
	name := playerName()
	if mine, err := store.PlayerBest(name); err == nil && mine > 0 {
		fmt.Printf("Your best (%s): %d\n", name, int(mine))
	}

	return nil
}

// loadHighScore reads the high score file. A missing file is not an error.
func loadHighScore() (float64, bool, error) {
	hs, err := storage.NewHighScoreFile(flagHighScore)
	if err != nil {
		return 0, false, err
	}
	best, err := hs.Load()
	if errors.Is(err, storage.ErrNoHighScore) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return best, true, nil
}
