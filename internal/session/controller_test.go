package session

import (
	"testing"

	"github.com/vovakirdan/tui-pacman/internal/env"
	"github.com/vovakirdan/tui-pacman/internal/input"
)

// fakeState is the opaque state of the fake environment.
type fakeState struct {
	seed  int64
	steps int
}

// fakeObs reports score and lives through the capability interfaces.
type fakeObs struct {
	score int
	lives int
}

func (o fakeObs) Score() int { return o.score }
func (o fakeObs) Lives() int { return o.lives }

// fakeEnv is a controllable environment double. Tests set nextReward and
// nextDone between Advance calls to script step outcomes.
type fakeEnv struct {
	resetSeeds  []int64      // Seeds passed to Reset, in order
	stepActions []env.Action // Actions passed to Step, in order

	nextReward float64
	nextDone   bool
	score      int
}

func (f *fakeEnv) ID() string    { return "fake" }
func (f *fakeEnv) Title() string { return "Fake" }

func (f *fakeEnv) Reset(seed int64) (env.Observation, env.State) {
	f.resetSeeds = append(f.resetSeeds, seed)
	return fakeObs{score: 0, lives: 3}, fakeState{seed: seed}
}

func (f *fakeEnv) Step(state env.State, action env.Action) env.StepResult {
	f.stepActions = append(f.stepActions, action)
	s := state.(fakeState)
	next := fakeState{seed: s.seed, steps: s.steps + 1}
	f.score += int(f.nextReward)
	return env.StepResult{
		Obs:    fakeObs{score: f.score, lives: 3},
		State:  next,
		Reward: f.nextReward,
		Done:   f.nextDone,
	}
}

func (f *fakeEnv) Render(state env.State) *env.Frame {
	s := state.(fakeState)
	frame := env.NewFrame(2, 2)
	frame.Set(0, 0, byte(s.steps), byte(s.steps), byte(s.steps))
	return frame
}

func (f *fakeEnv) ActionSpace() env.ActionSpace {
	return env.ActionSpace{N: 5}
}

func TestStartInitializes(t *testing.T) {
	fe := &fakeEnv{}
	c := NewController(fe)
	c.Start(42)

	if c.Status() != StatusRunning {
		t.Errorf("status = %s, want running", c.Status())
	}
	if c.ResetCounter() != 0 {
		t.Errorf("resetCounter = %d, want 0", c.ResetCounter())
	}
	if got := c.Telemetry().CumulativeReward; got != 0 {
		t.Errorf("cumulative reward = %v, want 0", got)
	}
	if len(fe.resetSeeds) != 1 {
		t.Fatalf("expected 1 reset, got %d", len(fe.resetSeeds))
	}
	if want := DeriveSeed(42, 0); fe.resetSeeds[0] != want {
		t.Errorf("reset seed = %d, want %d", fe.resetSeeds[0], want)
	}
}

func TestAdvanceStepsAndAccumulates(t *testing.T) {
	fe := &fakeEnv{nextReward: 2.5}
	c := NewController(fe)
	c.Start(42)

	res := c.Advance(input.ActionRight)

	if !res.Stepped {
		t.Fatal("Advance should step while running")
	}
	if res.Reward != 2.5 {
		t.Errorf("reward = %v, want 2.5", res.Reward)
	}
	if c.ResetCounter() != 0 {
		t.Errorf("resetCounter changed to %d on a normal step", c.ResetCounter())
	}
	if got := c.Telemetry().CumulativeReward; got != 2.5 {
		t.Errorf("cumulative reward = %v, want 2.5", got)
	}
	if got := c.Telemetry().Steps; got != 1 {
		t.Errorf("steps = %d, want 1", got)
	}
	if len(fe.stepActions) != 1 || fe.stepActions[0] != env.ActRight {
		t.Errorf("environment saw actions %v, want [right]", fe.stepActions)
	}
	// State must be the value returned by the step
	if s := c.state.(fakeState); s.steps != 1 {
		t.Errorf("state steps = %d, want 1", s.steps)
	}
}

func TestResetZeroesRewardAndIncrementsCounter(t *testing.T) {
	fe := &fakeEnv{nextReward: 1}
	c := NewController(fe)
	c.Start(7)
	c.Advance(input.ActionUp)
	c.Advance(input.ActionUp)

	before := c.ResetCounter()
	c.Reset()

	if c.ResetCounter() != before+1 {
		t.Errorf("resetCounter = %d, want %d", c.ResetCounter(), before+1)
	}
	if got := c.Telemetry().CumulativeReward; got != 0 {
		t.Errorf("cumulative reward after reset = %v, want 0", got)
	}
	if got := c.Telemetry().Steps; got != 0 {
		t.Errorf("steps after reset = %d, want 0", got)
	}

	// The reset must have used a fresh seed
	last := fe.resetSeeds[len(fe.resetSeeds)-1]
	if last != DeriveSeed(7, before+1) {
		t.Errorf("reset seed = %d, want DeriveSeed(7, %d)", last, before+1)
	}
	if last == fe.resetSeeds[0] {
		t.Error("reset reused the initial seed")
	}
}

func TestAdvanceWhilePausedIsRenderOnlyNoOp(t *testing.T) {
	fe := &fakeEnv{nextReward: 1}
	c := NewController(fe)
	c.Start(42)

	if paused := c.TogglePause(); !paused {
		t.Fatal("TogglePause should report paused")
	}

	stateBefore := c.state.(fakeState)
	res := c.Advance(input.ActionDown)

	if res.Stepped {
		t.Error("Advance while paused must not step")
	}
	if len(fe.stepActions) != 0 {
		t.Errorf("environment stepped %d times while paused", len(fe.stepActions))
	}
	if c.state.(fakeState) != stateBefore {
		t.Error("state changed while paused")
	}

	// Rendering while paused still works and reflects the unchanged state
	f1 := c.Render()
	f2 := c.Render()
	if f1 == nil || !f1.Equal(f2) {
		t.Error("renders while paused should be identical")
	}
}

func TestTogglePauseRoundTrip(t *testing.T) {
	fe := &fakeEnv{}
	c := NewController(fe)
	c.Start(1)

	if c.Paused() {
		t.Fatal("fresh session should not be paused")
	}
	c.TogglePause()
	c.TogglePause()
	if c.Paused() {
		t.Error("double toggle should return to unpaused")
	}
	if c.Status() != StatusRunning {
		t.Errorf("status = %s, want running", c.Status())
	}
}

func TestAdvanceAfterStopIsNoOp(t *testing.T) {
	fe := &fakeEnv{}
	c := NewController(fe)
	c.Start(1)
	c.Stop()

	res := c.Advance(input.ActionUp)
	if res.Stepped {
		t.Error("Advance after Stop must not step")
	}
	if len(fe.stepActions) != 0 {
		t.Error("environment stepped after Stop")
	}
	if c.Status() != StatusStopped {
		t.Errorf("status = %s, want stopped", c.Status())
	}
}

func TestAdvanceBeforeStartIsNoOp(t *testing.T) {
	fe := &fakeEnv{}
	c := NewController(fe)

	res := c.Advance(input.ActionUp)
	if res.Stepped {
		t.Error("Advance before Start must not step")
	}
	if c.Render() != nil {
		t.Error("Render before Start should return nil")
	}
}

func TestDoneReportsThenAutoResets(t *testing.T) {
	fe := &fakeEnv{nextReward: 5}
	c := NewController(fe)
	c.Start(42)

	// Two normal steps: cumulative reward reaches 10
	c.Advance(input.ActionRight)
	c.Advance(input.ActionRight)
	if got := c.Telemetry().CumulativeReward; got != 10 {
		t.Fatalf("cumulative reward = %v, want 10", got)
	}

	// Terminal step worth 5 more
	fe.nextDone = true
	res := c.Advance(input.ActionRight)

	if !res.Done {
		t.Fatal("result should carry the done flag")
	}
	if res.FinalReward != 15 {
		t.Errorf("final reward = %v, want 15", res.FinalReward)
	}
	if res.FinalScore != fe.score {
		t.Errorf("final score = %d, want %d", res.FinalScore, fe.score)
	}
	if res.FinalSteps != 3 {
		t.Errorf("final steps = %d, want 3", res.FinalSteps)
	}
	if res.ResetIndex != 0 {
		t.Errorf("reset index = %d, want 0", res.ResetIndex)
	}

	// Auto-reset happened: counter bumped, reward zeroed, fresh episode
	if c.ResetCounter() != 1 {
		t.Errorf("resetCounter = %d, want 1", c.ResetCounter())
	}
	if got := c.Telemetry().CumulativeReward; got != 0 {
		t.Errorf("cumulative reward after auto-reset = %v, want 0", got)
	}
	if len(fe.resetSeeds) != 2 {
		t.Fatalf("expected 2 resets (start + auto), got %d", len(fe.resetSeeds))
	}
	if fe.resetSeeds[1] == fe.resetSeeds[0] {
		t.Error("auto-reset reused the initial seed")
	}
}

func TestEndToEndScenario(t *testing.T) {
	// start(42) -> counter 0, state S0; one Advance(RIGHT) -> counter
	// unchanged, reward accumulated, state S1
	fe := &fakeEnv{nextReward: 1.5}
	c := NewController(fe)
	c.Start(42)

	s0 := c.state.(fakeState)
	if c.ResetCounter() != 0 {
		t.Fatalf("resetCounter = %d, want 0", c.ResetCounter())
	}

	c.Advance(input.ActionRight)

	if c.ResetCounter() != 0 {
		t.Errorf("resetCounter = %d, want 0", c.ResetCounter())
	}
	if got := c.Telemetry().CumulativeReward; got != 1.5 {
		t.Errorf("cumulative reward = %v, want 1.5", got)
	}
	s1 := c.state.(fakeState)
	if s1 == s0 {
		t.Error("state should have advanced")
	}
	if s1.steps != s0.steps+1 {
		t.Errorf("state steps = %d, want %d", s1.steps, s0.steps+1)
	}
}
