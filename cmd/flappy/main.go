// flappy is a side-scrolling flap game for the terminal.
//
// Usage:
//
//	flappy play              - Play in this terminal
//	flappy serve             - Start SSH server for remote play
//	flappy scores            - Show the best runs
//	flappy sim               - Run the game headless with a fixed flap pattern
//	flappy config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Game tuning YAML
//	--db <path>         - Run history database (default: ~/.flappy/runs.db)
//	--highscore <path>  - High score file (default: ~/.flappy/highscore.dat)
//	--log <path>        - Debug log file (default: none)
//
// FLAPPY_CONFIG, FLAPPY_DB, FLAPPY_HIGHSCORE and FLAPPY_LOG, from the
// environment or a .env file, override the flag defaults.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagConfig    string
	flagDBPath    string
	flagHighScore string
	flagLogPath   string
)

// envFlags maps global flags to the environment variables that default them.
var envFlags = map[string]string{
	"config":    "FLAPPY_CONFIG",
	"db":        "FLAPPY_DB",
	"highscore": "FLAPPY_HIGHSCORE",
	"log":       "FLAPPY_LOG",
}

var logFile *os.File

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - flap between the pipes in your terminal",
	Long: `Flappy is a side-scrolling game for the terminal: keep the bird in the air
and fly through the gaps. Every pipe you clear is worth half a point, and the
game speeds up every five points.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View the best runs
  sim      - Run headless with a fixed flap pattern
  config   - Print the effective configuration

Examples:
  flappy play
  flappy play --seed 42
  flappy serve --ssh :2222
  flappy scores --limit 20
  flappy sim --ticks 1200 --flap-every 18`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultDBPath, "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagHighScore, "highscore", storage.DefaultHighScorePath, "Path to high score file")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write debug logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// setup applies .env defaults and installs the default logger.
func setup(cmd *cobra.Command, _ []string) error {
	// A missing .env file is fine
	_ = godotenv.Load()

	for name, env := range envFlags {
		value, ok := os.LookupEnv(env)
		if !ok || cmd.Flags().Changed(name) {
			continue
		}
		if err := cmd.Flags().Set(name, value); err != nil {
			return fmt.Errorf("%s: %w", env, err)
		}
	}

	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	return setupLogger(flagLogPath)
}

// setupLogger sends logs to path, or discards them so they never draw over
// the alt-screen.
func setupLogger(path string) error {
	if path == "" {
		log.SetDefault(log.New(io.Discard))
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	logFile = f

	log.SetDefault(log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "flappy",
	}))
	return nil
}

func teardown(_ *cobra.Command, _ []string) error {
	if logFile == nil {
		return nil
	}
	return logFile.Close()
}
