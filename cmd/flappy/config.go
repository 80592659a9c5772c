package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the game configuration as YAML after applying the search order:
--config, ~/.flappy/config.yaml, ./configs/flappy.yaml, then the built-in
defaults. The output is a valid config file to start tuning from.

Examples:
  flappy config > ~/.flappy/config.yaml
  flappy config --config ./hard.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(os.Stdout, string(data))
	return err
}
