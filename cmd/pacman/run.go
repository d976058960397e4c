package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/env"
	"github.com/vovakirdan/tui-pacman/internal/session"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

var (
	flagRunSteps int
	flagRunBlock int
)

var runCmd = &cobra.Command{
	Use:   "run [env]",
	Short: "Run a headless scripted session",
	Long: `Drive an environment with a scripted action source and no UI.
The script cycles Up, Right, Left, Down in fixed-size blocks. Progress
is logged every 10 steps and at every episode end.

Examples:
  pacman run
  pacman run pacman --steps 200 --seed 42
  pacman run --steps 100 --block 5`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRunCmd,
}

func init() {
	runCmd.Flags().IntVar(&flagRunSteps, "steps", 0, "Steps to run (0 = config value)")
	runCmd.Flags().IntVar(&flagRunBlock, "block", 0, "Steps per scripted direction (0 = config value)")
}

func runRunCmd(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "pacman-run",
	})

	cfg, err := loadConfig()
	if err != nil {
		logger.Fatal("cannot load config", "error", err)
	}
	if flagRunSteps > 0 {
		cfg.Scripted.Steps = flagRunSteps
	}
	if flagRunBlock > 0 {
		cfg.Scripted.BlockSize = flagRunBlock
	}

	envID := cfg.Environment
	if len(args) > 0 {
		envID = args[0]
	}

	environment, err := env.Create(envID)
	if err != nil {
		logger.Fatal("cannot create environment", "env", envID, "error", err)
	}

	masterSeed := flagSeed
	if masterSeed == 0 {
		masterSeed = time.Now().UnixNano()
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open episodes database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	ctrl := session.NewController(environment)
	ctrl.Start(masterSeed)
	script := session.NewScripted(cfg.Scripted.BlockSize)

	logger.Info("session started",
		"env", envID, "seed", masterSeed, "steps", cfg.Scripted.Steps)

	var frameW, frameH int
	if f := ctrl.Render(); f != nil {
		frameW, frameH = f.Width(), f.Height()
	}

	stepsRun := 0
	var final session.Telemetry
	for step := 0; step < cfg.Scripted.Steps; step++ {
		action := script.Action(step)
		res := ctrl.Advance(action)
		stepsRun++

		// Render every step to exercise the pipeline headlessly
		if f := ctrl.Render(); f == nil {
			logger.Error("render returned no frame", "step", step)
		} else if f.Width() != frameW || f.Height() != frameH {
			logger.Error("frame shape changed",
				"step", step, "w", f.Width(), "h", f.Height())
		} else if !f.Equal(ctrl.Render()) {
			logger.Error("render is not idempotent", "step", step)
		}

		if res.Done {
			// The controller already reset; report the finished episode
			final = session.Telemetry{
				CumulativeReward: res.FinalReward,
				Steps:            res.FinalSteps,
				Score:            res.FinalScore,
			}
		} else {
			final = ctrl.Telemetry()
		}
		if (step+1)%10 == 0 {
			logger.Info("step",
				"n", step+1,
				"action", action.String(),
				"reward", fmt.Sprintf("%.1f", res.Reward),
				"total", fmt.Sprintf("%.1f", final.CumulativeReward),
				"score", final.Score,
				"lives", final.Lives,
			)
		}

		if res.Done {
			logger.Info("episode finished",
				"score", res.FinalScore,
				"reward", fmt.Sprintf("%.1f", res.FinalReward),
				"steps", res.FinalSteps,
				"reset", res.ResetIndex,
			)
			if store != nil {
				if _, saveErr := store.SaveEpisode(storage.EpisodeEntry{
					EnvID:      envID,
					Score:      res.FinalScore,
					Reward:     res.FinalReward,
					Steps:      res.FinalSteps,
					MasterSeed: masterSeed,
					ResetIndex: int64(res.ResetIndex),
				}); saveErr != nil {
					logger.Warn("could not save episode", "error", saveErr)
				}
			}
			// Scripted sessions stop at the first episode end
			break
		}
	}

	ctrl.Stop()

	logger.Info("session finished",
		"steps_run", stepsRun,
		"score", final.Score,
		"reward", fmt.Sprintf("%.1f", final.CumulativeReward),
	)
}
