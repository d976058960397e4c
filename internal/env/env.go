// Package env defines the functional environment contract used by the
// session driver. Environments contain pure logic with no external
// dependencies: reset and step take all of their inputs explicitly and
// return fresh values, so the caller owns the one authoritative state.
package env

// Action is a discrete action in the environment's own vocabulary.
type Action int

// The environment action vocabulary. Every environment in this repo uses
// the same five discrete actions.
const (
	ActNoop Action = iota
	ActUp
	ActRight
	ActLeft
	ActDown
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActNoop:
		return "noop"
	case ActUp:
		return "up"
	case ActRight:
		return "right"
	case ActLeft:
		return "left"
	case ActDown:
		return "down"
	default:
		return "unknown"
	}
}

// State is an opaque environment state. It is produced by Reset and Step
// and owned exclusively by the caller; environments never retain it.
type State any

// Observation is an opaque structured view of the state returned alongside
// it. Observations may implement the capability interfaces below; callers
// must not assume they do.
type Observation any

// StepResult is returned by Environment.Step after one simulation step.
type StepResult struct {
	Obs    Observation    // View of the new state
	State  State          // New state, replaces the caller's copy wholesale
	Reward float64        // Reward earned by this step
	Done   bool           // Whether the episode ended on this step
	Info   map[string]any // Diagnostic bag, may be nil
}

// ActionSpace describes the set of valid actions for an environment.
type ActionSpace struct {
	N int // Number of discrete actions; valid actions are 0..N-1
}

// Contains returns true if a is a valid action in this space.
func (s ActionSpace) Contains(a Action) bool {
	return a >= 0 && int(a) < s.N
}

// Environment is the contract every playable environment implements.
// Reset and Step must be pure: same inputs, same outputs, no hidden
// mutable state. Render must be a deterministic function of the state.
type Environment interface {
	// ID returns a unique identifier (e.g. "pacman").
	// Used for CLI commands and episode storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a fresh episode from the given seed and returns the
	// initial observation and state.
	Reset(seed int64) (Observation, State)

	// Step advances the given state by one action and returns the result.
	// The input state is not modified.
	Step(state State, action Action) StepResult

	// Render rasterizes the state into an RGB frame. Calling Render twice
	// on the same state yields bit-identical frames.
	Render(state State) *Frame

	// ActionSpace describes the valid action range.
	ActionSpace() ActionSpace
}

// Capability interfaces observations may implement. Telemetry reads score
// and lives through these; an observation that lacks one reads as zero.

// ScoreReporter exposes the current game score.
type ScoreReporter interface {
	Score() int
}

// LivesReporter exposes the remaining lives.
type LivesReporter interface {
	Lives() int
}

// Position is an entity position in maze cells.
type Position struct {
	X, Y int
}

// PositionReporter exposes entity positions (player first).
type PositionReporter interface {
	Positions() []Position
}

// ObsScore extracts the score from an observation, or 0 if the observation
// does not report one.
func ObsScore(obs Observation) int {
	if r, ok := obs.(ScoreReporter); ok {
		return r.Score()
	}
	return 0
}

// ObsLives extracts the lives from an observation, or 0 if the observation
// does not report them.
func ObsLives(obs Observation) int {
	if r, ok := obs.(LivesReporter); ok {
		return r.Lives()
	}
	return 0
}
