package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pacman/internal/env"
	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [env]",
	Short: "Drive an environment interactively",
	Long: `Start an interactive session driving the specified environment.
Without an argument the configured default environment is used.

Controls:
  Arrows/WASD - Move
  P           - Pause
  R           - Reset the episode
  Q/Ctrl+C    - Quit

Examples:
  pacman play
  pacman play pacman --seed 42
  pacman play --fps 15 --scale 2`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlayCmd,
}

func runPlayCmd(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	envID := cfg.Environment
	if len(args) > 0 {
		envID = args[0]
	}

	if !env.Exists(envID) {
		fmt.Fprintf(os.Stderr, "Error: unknown environment %q\n", envID)
		fmt.Fprintln(os.Stderr, "Run 'pacman list' to see available environments.")
		os.Exit(1)
	}

	environment, err := env.Create(envID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating environment: %v\n", err)
		os.Exit(1)
	}

	cfg.Scale = fitScale(environment, cfg.Scale)

	// Open episode storage; the session still works without it
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open episodes database: %v\n", err)
		store = nil
	}

	runErr := tui.Run(environment, store, cfg, flagSeed)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running session: %v\n", runErr)
		os.Exit(1)
	}
}

// fitScale clamps the upscale factor so the rendered frame fits the
// terminal. The frame shape comes from a throwaway reset of the
// environment; the session resets again with the real seed.
func fitScale(environment env.Environment, scale int) int {
	if scale < 1 {
		scale = 1
	}

	width, height := 80, 24 // Defaults when not a terminal
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	_, state := environment.Reset(0)
	frame := environment.Render(state)
	if frame == nil {
		return scale
	}

	height -= 3 // Status and help lines below the frame
	for scale > 1 {
		w, h := tui.DisplaySize(frame, scale)
		if w <= width && h <= height {
			break
		}
		scale--
	}
	return scale
}
