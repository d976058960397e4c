package session

import "github.com/vovakirdan/tui-pacman/internal/env"

// Telemetry accumulates per-episode bookkeeping for display and
// end-of-episode reporting. Score and lives are read from the latest
// observation through its capability interfaces; an observation that
// does not report them reads as zero.
type Telemetry struct {
	CumulativeReward float64 // Reward summed since the episode started
	Steps            int     // Steps taken in the current episode
	Score            int     // Score from the latest observation
	Lives            int     // Lives from the latest observation
}

// reset zeroes the per-episode counters and primes score/lives from the
// initial observation.
func (t *Telemetry) reset(obs env.Observation) {
	t.CumulativeReward = 0
	t.Steps = 0
	t.observe(obs)
}

// record folds one step result into the telemetry.
func (t *Telemetry) record(res env.StepResult) {
	t.CumulativeReward += res.Reward
	t.Steps++
	t.observe(res.Obs)
}

func (t *Telemetry) observe(obs env.Observation) {
	t.Score = env.ObsScore(obs)
	t.Lives = env.ObsLives(obs)
}
