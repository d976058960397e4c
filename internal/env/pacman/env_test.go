package pacman

import (
	"testing"

	"github.com/vovakirdan/tui-pacman/internal/env"
)

func snapshotsEqual(a, b Snapshot) bool {
	if a.Steps != b.Steps || a.Score != b.Score || a.Lives != b.Lives ||
		a.Player != b.Player || a.PelletsLeft != b.PelletsLeft ||
		a.Frightened != b.Frightened || a.Done != b.Done ||
		len(a.Ghosts) != len(b.Ghosts) {
		return false
	}
	for i := range a.Ghosts {
		if a.Ghosts[i] != b.Ghosts[i] {
			return false
		}
	}
	return true
}

func TestDeterminism(t *testing.T) {
	// Two episodes with the same seed and actions must match step for step
	e1 := New()
	e2 := New()

	_, s1 := e1.Reset(12345)
	_, s2 := e2.Reset(12345)

	actions := []env.Action{
		env.ActRight, env.ActRight, env.ActUp, env.ActUp, env.ActLeft,
		env.ActDown, env.ActLeft, env.ActLeft, env.ActNoop, env.ActDown,
	}

	for i := 0; i < 100; i++ {
		a := actions[i%len(actions)]
		r1 := e1.Step(s1, a)
		r2 := e2.Step(s2, a)
		s1 = r1.State
		s2 = r2.State

		if r1.Reward != r2.Reward || r1.Done != r2.Done {
			t.Fatalf("step %d diverged: reward %v/%v done %v/%v", i, r1.Reward, r2.Reward, r1.Done, r2.Done)
		}
		if !snapshotsEqual(TakeSnapshot(s1), TakeSnapshot(s2)) {
			t.Fatalf("step %d: snapshots diverged\n%+v\n%+v", i, TakeSnapshot(s1), TakeSnapshot(s2))
		}
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	e := New()
	_, a := e.Reset(1)
	_, b := e.Reset(2)

	// Drive both with NOOP long enough for ghost tie-breaks to differ
	diverged := false
	for i := 0; i < 200 && !diverged; i++ {
		ra := e.Step(a, env.ActNoop)
		rb := e.Step(b, env.ActNoop)
		a, b = ra.State, rb.State
		if !snapshotsEqual(TakeSnapshot(a), TakeSnapshot(b)) {
			diverged = true
		}
	}
	if !diverged {
		t.Error("episodes with different seeds never diverged")
	}
}

func TestStepDoesNotMutateInput(t *testing.T) {
	e := New()
	_, state := e.Reset(42)

	before := TakeSnapshot(state)
	e.Step(state, env.ActRight)
	after := TakeSnapshot(state)

	if !snapshotsEqual(before, after) {
		t.Error("Step mutated the state it was given")
	}
}

func TestWallsBlockMovement(t *testing.T) {
	e := New()
	_, state := e.Reset(42)
	s := state.(State)

	// The player spawns with a wall two cells below (maze border side);
	// walk down until blocked and confirm position holds
	for i := 0; i < 30; i++ {
		res := e.Step(s, env.ActDown)
		next := res.State.(State)
		if next.Player == s.Player {
			return // Blocked, as expected eventually
		}
		if e.maze.wallAt(next.Player.X, next.Player.Y) {
			t.Fatalf("player walked into a wall at (%d,%d)", next.Player.X, next.Player.Y)
		}
		s = next
	}
	t.Error("player was never blocked walking down a bounded maze")
}

func TestPelletScoring(t *testing.T) {
	e := New()
	_, state := e.Reset(42)
	s := state.(State)

	// Drop a pellet directly to the player's right
	right := env.Position{X: s.Player.X + 1, Y: s.Player.Y}
	if e.maze.wallAt(right.X, right.Y) {
		t.Fatalf("test maze changed: wall at (%d,%d)", right.X, right.Y)
	}
	i := e.maze.idx(right.X, right.Y)
	if s.Pellets[i] == pelletNone {
		s.Pellets[i] = pelletDot
		s.PelletsNum++
	}
	before := s.PelletsNum

	res := e.Step(s, env.ActRight)
	next := res.State.(State)

	if res.Reward < scoreDot {
		t.Errorf("reward = %v, want at least %d for a pellet", res.Reward, scoreDot)
	}
	if next.PelletsNum != before-1 {
		t.Errorf("pellets left = %d, want %d", next.PelletsNum, before-1)
	}
	if next.Pellets[i] != pelletNone {
		t.Error("eaten pellet still on the board")
	}
}

func TestPowerPelletFrightensGhosts(t *testing.T) {
	e := New()
	_, state := e.Reset(42)
	s := state.(State)

	right := env.Position{X: s.Player.X + 1, Y: s.Player.Y}
	i := e.maze.idx(right.X, right.Y)
	if s.Pellets[i] == pelletNone {
		s.PelletsNum++
	}
	s.Pellets[i] = pelletPower

	res := e.Step(s, env.ActRight)
	next := res.State.(State)

	if next.Frightened == 0 {
		t.Error("power pellet should frighten ghosts")
	}
	if res.Reward < scorePower {
		t.Errorf("reward = %v, want at least %d", res.Reward, scorePower)
	}
}

func TestGhostContactCostsLife(t *testing.T) {
	e := New()
	_, state := e.Reset(42)
	s := state.(State)

	// Teleport a ghost onto the player
	s.Ghosts[0].Pos = s.Player
	s.Frightened = 0

	res := e.Step(s, env.ActNoop)
	next := res.State.(State)

	if next.Lives != startLives-1 {
		t.Errorf("lives = %d, want %d", next.Lives, startLives-1)
	}
	if next.Player != e.maze.playerStart {
		t.Error("player should respawn at start after losing a life")
	}
	if next.Done {
		t.Error("episode should continue with lives remaining")
	}
}

func TestFrightenedGhostIsEaten(t *testing.T) {
	e := New()
	_, state := e.Reset(42)
	s := state.(State)

	s.Ghosts[0].Pos = s.Player
	s.Frightened = frightFor

	res := e.Step(s, env.ActNoop)
	next := res.State.(State)

	if next.Lives != startLives {
		t.Errorf("lives = %d, want %d (frightened contact is safe)", next.Lives, startLives)
	}
	if res.Reward < scoreGhost {
		t.Errorf("reward = %v, want at least %d", res.Reward, scoreGhost)
	}
	if next.Ghosts[0].Pos != next.Ghosts[0].Home {
		t.Error("eaten ghost should respawn at home")
	}
}

func TestDoneOnLastLife(t *testing.T) {
	e := New()
	_, state := e.Reset(42)
	s := state.(State)

	s.Lives = 1
	s.Ghosts[0].Pos = s.Player
	s.Frightened = 0

	res := e.Step(s, env.ActNoop)
	if !res.Done {
		t.Error("losing the last life should end the episode")
	}
}

func TestDoneOnBoardClear(t *testing.T) {
	e := New()
	_, state := e.Reset(42)
	s := state.(State)

	// Leave exactly one pellet, right of the player
	for i := range s.Pellets {
		s.Pellets[i] = pelletNone
	}
	right := env.Position{X: s.Player.X + 1, Y: s.Player.Y}
	s.Pellets[e.maze.idx(right.X, right.Y)] = pelletDot
	s.PelletsNum = 1

	// Move ghosts far away so the clear is what ends it
	far := env.Position{X: 1, Y: 1}
	for i := range s.Ghosts {
		s.Ghosts[i].Pos = far
	}

	res := e.Step(s, env.ActRight)
	if !res.Done {
		t.Fatal("clearing the board should end the episode")
	}
	if res.Reward < scoreDot+scoreClear {
		t.Errorf("reward = %v, want at least %d", res.Reward, scoreDot+scoreClear)
	}
}

func TestTerminalStateStepsToItself(t *testing.T) {
	e := New()
	_, state := e.Reset(42)
	s := state.(State)
	s.Done = true

	res := e.Step(s, env.ActRight)
	if !res.Done || res.Reward != 0 {
		t.Errorf("terminal step: done=%v reward=%v, want done with zero reward", res.Done, res.Reward)
	}
}

func TestRenderIdempotent(t *testing.T) {
	e := New()
	_, state := e.Reset(42)

	f1 := e.Render(state)
	f2 := e.Render(state)
	if !f1.Equal(f2) {
		t.Error("rendering the same state twice should be bit-identical")
	}
}

func TestRenderShapeAndRange(t *testing.T) {
	e := New()
	_, state := e.Reset(42)

	f := e.Render(state)
	if f.Width() != e.maze.w || f.Height() != e.maze.h {
		t.Errorf("frame %dx%d, want %dx%d", f.Width(), f.Height(), e.maze.w, e.maze.h)
	}

	// Player pixel must be the player color
	s := state.(State)
	r, g, b := f.At(s.Player.X, s.Player.Y)
	if r != colorPlayer.r || g != colorPlayer.g || b != colorPlayer.b {
		t.Errorf("player pixel = (%d,%d,%d), want yellow", r, g, b)
	}
}

func TestResetObservation(t *testing.T) {
	e := New()
	obs, _ := e.Reset(42)

	if got := env.ObsScore(obs); got != 0 {
		t.Errorf("initial score = %d, want 0", got)
	}
	if got := env.ObsLives(obs); got != startLives {
		t.Errorf("initial lives = %d, want %d", got, startLives)
	}

	pr, ok := obs.(env.PositionReporter)
	if !ok {
		t.Fatal("observation should report positions")
	}
	if positions := pr.Positions(); len(positions) != 1+len(board.ghostStarts) {
		t.Errorf("positions = %d, want %d", len(positions), 1+len(board.ghostStarts))
	}
}

func TestMazeParses(t *testing.T) {
	if board.w != 19 || board.h != 15 {
		t.Errorf("board %dx%d, want 19x15", board.w, board.h)
	}
	if board.pelletCount == 0 {
		t.Error("board has no pellets")
	}
	if len(board.ghostStarts) != 4 {
		t.Errorf("ghost spawns = %d, want 4", len(board.ghostStarts))
	}
	if board.wallAt(board.playerStart.X, board.playerStart.Y) {
		t.Error("player spawns inside a wall")
	}
	if board.wallAt(-1, 0) != true || board.wallAt(0, board.h) != true {
		t.Error("out-of-bounds should count as wall")
	}
}
