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

var scoresCmd = &cobra.Command{
	Use:   "scores [env]",
	Short: "Show episode history",
	Long: `Display recorded episodes. With an environment argument, prints the
top 10 episodes for that environment. Without one, opens the interactive
episode history browser.

Examples:
  pacman scores
  pacman scores pacman`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening episodes database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// No argument: interactive browser
	if len(args) == 0 {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	envID := args[0]
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

	episodes, err := store.TopEpisodes(envID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving episodes: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Episode History - %s\n", environment.Title())
	fmt.Println()

	if len(episodes) == 0 {
		fmt.Println("No episodes recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'pacman play %s' to record the first one!\n", envID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-10s  %-7s  %s\n", "Rank", "Score", "Reward", "Steps", "Date")
	fmt.Printf("  %-4s  %-8s  %-10s  %-7s  %s\n", "----", "-----", "------", "-----", "----")

	for i, entry := range episodes {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-10.1f  %-7d  %s\n",
			i+1, entry.Score, entry.Reward, entry.Steps, dateStr)
	}

	fmt.Println()
	if stats, statsErr := store.GetEnvStats(envID); statsErr == nil && stats.Episodes > 0 {
		fmt.Printf("Best: %d over %d episodes (avg reward %.1f)\n",
			stats.HighScore, stats.Episodes, stats.AvgReward)
	}
}
