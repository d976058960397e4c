// pacman is a terminal session driver for grid-world game environments.
//
// Usage:
//
//	pacman list              - List available environments
//	pacman play [env]        - Drive an environment interactively
//	pacman run [env]         - Run a headless scripted session
//	pacman serve             - Start SSH server for remote play
//	pacman scores [env]      - Show episode history for an environment
//
// Global flags:
//
//	--fps <rate>    - Loop tick rate (0 = config value)
//	--seed <value>  - Master seed (0 = time-based)
//	--scale <n>     - Frame upscale factor (0 = config value)
//	--config <path> - Custom config YAML
//	--db <path>     - Episode database path (empty = config value)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/config"

	// Import environments to register them
	_ "github.com/vovakirdan/tui-pacman/internal/env/pacman"
)

var (
	// Global flags; zero values defer to the loaded config
	flagFPS    int
	flagSeed   int64
	flagScale  int
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pacman",
	Short: "Drive game environments in your terminal",
	Long: `pacman drives seeded game environments through a fixed-cadence
control loop, either interactively in the terminal or headless with a
scripted action source.

Available commands:
  list     - Show all available environments
  play     - Drive an environment interactively
  run      - Headless scripted session with step logging
  serve    - Start SSH server for remote play
  scores   - View episode history

Examples:
  pacman list
  pacman play
  pacman play --seed 42 --fps 15
  pacman run --steps 200
  pacman serve --ssh :2222
  pacman scores pacman`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = config value)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Master seed (0 = time-based)")
	rootCmd.PersistentFlags().IntVar(&flagScale, "scale", 0, "Frame upscale factor (0 = config value)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to episode database (empty = config value)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// loadConfig resolves the effective session config: YAML (custom path or
// search order) overlaid with any non-zero global flags.
func loadConfig() (config.PlayConfig, error) {
	cfg, err := config.LoadPlay(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	if flagScale > 0 {
		cfg.Scale = flagScale
	}
	if flagDBPath != "" {
		cfg.DBPath = flagDBPath
	}

	return cfg, nil
}
