// Package session owns the episode lifecycle around a functional
// environment: seeding, pause/done transitions, action translation, and
// per-episode telemetry. It contains no terminal or storage dependencies;
// the platform layer drives it once per tick.
package session

import (
	"github.com/vovakirdan/tui-pacman/internal/env"
	"github.com/vovakirdan/tui-pacman/internal/input"
)

// Status is the controller's lifecycle state.
type Status int

const (
	StatusUninitialized Status = iota
	StatusRunning
	StatusPaused
	StatusStopped
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusUninitialized:
		return "uninitialized"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Result is returned by Advance. When Done is set the episode ended on
// this step; Final* carry the finished episode's report, captured before
// the automatic reset replaced the state.
type Result struct {
	Stepped bool    // Whether the environment was actually stepped
	Reward  float64 // Reward of this step
	Done    bool    // Whether this step ended the episode

	FinalScore  int     // Score at episode end (valid when Done)
	FinalReward float64 // Cumulative reward at episode end (valid when Done)
	FinalSteps  int     // Steps in the finished episode (valid when Done)
	ResetIndex  uint64  // Reset counter of the finished episode (valid when Done)
}

// Controller sequences reset/step calls against one environment. It holds
// the single authoritative state value, replacing it wholesale with each
// reset/step return; no earlier state is retained.
type Controller struct {
	environment env.Environment

	masterSeed   int64
	resetCounter uint64

	state  env.State
	obs    env.Observation
	status Status

	telemetry Telemetry
}

// NewController creates a controller for the given environment.
// Start must be called before any Advance.
func NewController(environment env.Environment) *Controller {
	return &Controller{
		environment: environment,
		status:      StatusUninitialized,
	}
}

// Start begins the session: reset counter zero, seed derived from the
// master seed, environment reset, telemetry cleared.
func (c *Controller) Start(masterSeed int64) {
	c.masterSeed = masterSeed
	c.resetCounter = 0
	c.resetEpisode()
	c.status = StatusRunning
}

// Reset manually starts a fresh episode. The reset counter increments by
// exactly one and the new seed is derived from (master, counter), so it
// never repeats a prior seed within this run. Cumulative reward is zeroed.
func (c *Controller) Reset() {
	if c.status == StatusUninitialized {
		return
	}
	c.resetCounter++
	c.resetEpisode()
}

func (c *Controller) resetEpisode() {
	seed := DeriveSeed(c.masterSeed, c.resetCounter)
	obs, state := c.environment.Reset(seed)
	c.obs = obs
	c.state = state
	c.telemetry.reset(obs)
}

// TogglePause flips between running and paused and returns true if the
// session is now paused. While paused, Advance is a render-only no-op.
func (c *Controller) TogglePause() bool {
	switch c.status {
	case StatusRunning:
		c.status = StatusPaused
	case StatusPaused:
		c.status = StatusRunning
	}
	return c.status == StatusPaused
}

// Stop ends the session. Subsequent Advance calls are no-ops; only a new
// Start leaves this state.
func (c *Controller) Stop() {
	c.status = StatusStopped
}

// Advance runs one tick. If the session is paused, stopped, or not yet
// started, nothing is stepped and the current state stays untouched.
// Otherwise the source action is translated, the environment stepped, the
// state replaced, and reward accumulated. When the step ends the episode
// the returned result reports the final score and cumulative reward first,
// then the controller auto-resets so the next Advance starts fresh.
func (c *Controller) Advance(action input.Action) Result {
	if c.status != StatusRunning {
		return Result{}
	}

	res := c.environment.Step(c.state, Translate(action))
	c.state = res.State
	c.obs = res.Obs
	c.telemetry.record(res)

	out := Result{
		Stepped: true,
		Reward:  res.Reward,
		Done:    res.Done,
	}

	if res.Done {
		out.FinalScore = c.telemetry.Score
		out.FinalReward = c.telemetry.CumulativeReward
		out.FinalSteps = c.telemetry.Steps
		out.ResetIndex = c.resetCounter
		c.resetCounter++
		c.resetEpisode()
	}

	return out
}

// Render rasterizes the current state. Safe to call every tick, including
// while paused: the frame reflects the unchanged state.
func (c *Controller) Render() *env.Frame {
	if c.status == StatusUninitialized {
		return nil
	}
	return c.environment.Render(c.state)
}

// Status returns the controller's lifecycle state.
func (c *Controller) Status() Status {
	return c.status
}

// Paused returns true if the session is paused.
func (c *Controller) Paused() bool {
	return c.status == StatusPaused
}

// Running returns true if Advance would step the environment.
func (c *Controller) Running() bool {
	return c.status == StatusRunning
}

// MasterSeed returns the seed the session was started with.
func (c *Controller) MasterSeed() int64 {
	return c.masterSeed
}

// ResetCounter returns the current episode's reset index.
func (c *Controller) ResetCounter() uint64 {
	return c.resetCounter
}

// Telemetry returns the current episode's bookkeeping.
func (c *Controller) Telemetry() Telemetry {
	return c.telemetry
}

// Observation returns the most recent observation.
func (c *Controller) Observation() env.Observation {
	return c.obs
}

// Environment returns the environment this controller drives.
func (c *Controller) Environment() env.Environment {
	return c.environment
}
