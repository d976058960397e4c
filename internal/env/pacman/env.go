// Package pacman implements the built-in Pac-Man environment as a pure
// functional reset/step/render triple. All mutable data, including the
// PRNG stream, lives in the State value; Step copies the state it is
// given and returns a new one, so callers can hold the single
// authoritative copy.
package pacman

import "github.com/vovakirdan/tui-pacman/internal/env"

// Scoring and timing rules.
const (
	scoreDot    = 10
	scorePower  = 50
	scoreGhost  = 200
	scoreClear  = 500
	frightFor   = 40 // Steps ghosts stay frightened after a power pellet
	ghostsEvery = 2  // Ghosts move once per this many steps
	startLives  = 3
)

// Env is the Pac-Man environment. It holds only the static board; every
// call takes and returns explicit state.
type Env struct {
	maze *maze
}

// New creates the Pac-Man environment.
func New() *Env {
	return &Env{maze: board}
}

func init() {
	env.Register("pacman", func() env.Environment {
		return New()
	})
}

// ID returns the environment identifier.
func (e *Env) ID() string {
	return "pacman"
}

// Title returns the display name.
func (e *Env) Title() string {
	return "Pac-Man"
}

// ActionSpace reports the five discrete actions.
func (e *Env) ActionSpace() env.ActionSpace {
	return env.ActionSpace{N: 5}
}

// ghost is one ghost's mutable state.
type ghost struct {
	Pos  env.Position
	Home env.Position
}

// State is the complete episode state. It is a value: Step never mutates
// the state it receives.
type State struct {
	Player     env.Position
	Ghosts     []ghost
	Pellets    []byte // Indexed like the maze; pelletNone once eaten
	PelletsNum int
	Frightened int // Remaining frightened steps, 0 when calm
	Score      int
	Lives      int
	Steps      int
	RNG        uint64
	Done       bool
}

func (s State) clone() State {
	c := s
	c.Ghosts = make([]ghost, len(s.Ghosts))
	copy(c.Ghosts, s.Ghosts)
	c.Pellets = make([]byte, len(s.Pellets))
	copy(c.Pellets, s.Pellets)
	return c
}

// randn draws a uniform value in [0, n) from the state's PRNG stream.
func (s *State) randn(n int) int {
	s.RNG = mixRNG(s.RNG + 0x9E3779B97F4A7C15)
	return int(s.RNG % uint64(n))
}

func mixRNG(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xBF58476D1CE4E5B9
	x ^= x >> 27
	x *= 0x94D049BB133111EB
	x ^= x >> 31
	return x
}

// Obs is the observation returned with every reset/step.
type Obs struct {
	ScoreVal    int
	LivesVal    int
	Player      env.Position
	Ghosts      []env.Position
	PelletsLeft int
	Steps       int
}

// Score implements env.ScoreReporter.
func (o Obs) Score() int { return o.ScoreVal }

// Lives implements env.LivesReporter.
func (o Obs) Lives() int { return o.LivesVal }

// Positions implements env.PositionReporter; player first, then ghosts.
func (o Obs) Positions() []env.Position {
	out := make([]env.Position, 0, 1+len(o.Ghosts))
	out = append(out, o.Player)
	out = append(out, o.Ghosts...)
	return out
}

func (e *Env) observe(s State) Obs {
	ghosts := make([]env.Position, len(s.Ghosts))
	for i, g := range s.Ghosts {
		ghosts[i] = g.Pos
	}
	return Obs{
		ScoreVal:    s.Score,
		LivesVal:    s.Lives,
		Player:      s.Player,
		Ghosts:      ghosts,
		PelletsLeft: s.PelletsNum,
		Steps:       s.Steps,
	}
}

// Reset starts a fresh episode from the given seed.
func (e *Env) Reset(seed int64) (env.Observation, env.State) {
	m := e.maze

	s := State{
		Player:     m.playerStart,
		Ghosts:     make([]ghost, len(m.ghostStarts)),
		Pellets:    make([]byte, len(m.pellets)),
		PelletsNum: m.pelletCount,
		Lives:      startLives,
		RNG:        mixRNG(uint64(seed)),
	}
	copy(s.Pellets, m.pellets)
	for i, home := range m.ghostStarts {
		s.Ghosts[i] = ghost{Pos: home, Home: home}
	}

	return e.observe(s), s
}

var actionDelta = map[env.Action]env.Position{
	env.ActUp:    {X: 0, Y: -1},
	env.ActRight: {X: 1, Y: 0},
	env.ActLeft:  {X: -1, Y: 0},
	env.ActDown:  {X: 0, Y: 1},
}

// dirDeltas is the fixed neighbor order used for ghost moves. Map
// iteration order is randomized, so ghosts walk this slice instead to
// keep the simulation deterministic per seed.
var dirDeltas = [...]env.Position{
	{X: 0, Y: -1},
	{X: 1, Y: 0},
	{X: -1, Y: 0},
	{X: 0, Y: 1},
}

// Step advances the episode by one action. The input state is not
// modified; a terminal state steps to itself with zero reward.
func (e *Env) Step(state env.State, action env.Action) env.StepResult {
	prev := state.(State)
	if prev.Done {
		s := prev.clone()
		return env.StepResult{
			Obs:   e.observe(s),
			State: s,
			Done:  true,
		}
	}

	s := prev.clone()
	s.Steps++
	scoreBefore := s.Score

	// Player moves first; blocked moves keep position
	if d, ok := actionDelta[action]; ok {
		nx, ny := s.Player.X+d.X, s.Player.Y+d.Y
		if !e.maze.wallAt(nx, ny) {
			s.Player = env.Position{X: nx, Y: ny}
		}
	}

	e.eatPellet(&s)
	e.checkGhosts(&s)

	// Ghosts move on their own cadence
	if !s.Done && s.Steps%ghostsEvery == 0 {
		e.moveGhosts(&s)
		e.checkGhosts(&s)
	}

	if s.Frightened > 0 {
		s.Frightened--
	}

	if !s.Done && s.PelletsNum == 0 {
		s.Score += scoreClear
		s.Done = true
	}

	info := map[string]any{
		"pellets_left": s.PelletsNum,
		"frightened":   s.Frightened,
	}

	return env.StepResult{
		Obs:    e.observe(s),
		State:  s,
		Reward: float64(s.Score - scoreBefore),
		Done:   s.Done,
		Info:   info,
	}
}

// eatPellet consumes a pellet under the player, if any.
func (e *Env) eatPellet(s *State) {
	i := e.maze.idx(s.Player.X, s.Player.Y)
	switch s.Pellets[i] {
	case pelletDot:
		s.Score += scoreDot
	case pelletPower:
		s.Score += scorePower
		s.Frightened = frightFor
	default:
		return
	}
	s.Pellets[i] = pelletNone
	s.PelletsNum--
}

// moveGhosts advances each ghost one cell. Calm ghosts chase the player,
// frightened ghosts flee; ties break on the state's PRNG stream so the
// walk stays deterministic per seed.
func (e *Env) moveGhosts(s *State) {
	for i := range s.Ghosts {
		g := &s.Ghosts[i]

		type cand struct {
			pos  env.Position
			dist int
		}
		var cands []cand
		for _, d := range dirDeltas {
			nx, ny := g.Pos.X+d.X, g.Pos.Y+d.Y
			if e.maze.wallAt(nx, ny) {
				continue
			}
			p := env.Position{X: nx, Y: ny}
			cands = append(cands, cand{pos: p, dist: manhattan(p, s.Player)})
		}
		if len(cands) == 0 {
			continue
		}

		best := cands[0]
		n := 1
		for _, c := range cands[1:] {
			better := c.dist < best.dist
			if s.Frightened > 0 {
				better = c.dist > best.dist
			}
			switch {
			case better:
				best = c
				n = 1
			case c.dist == best.dist:
				// Reservoir pick among equally good cells
				n++
				if s.randn(n) == 0 {
					best = c
				}
			}
		}
		g.Pos = best.pos
	}
}

// checkGhosts resolves player/ghost contact: frightened ghosts are eaten
// and sent home, calm ghosts cost a life and respawn everyone.
func (e *Env) checkGhosts(s *State) {
	for i := range s.Ghosts {
		g := &s.Ghosts[i]
		if g.Pos != s.Player {
			continue
		}
		if s.Frightened > 0 {
			s.Score += scoreGhost
			g.Pos = g.Home
			continue
		}

		s.Lives--
		if s.Lives <= 0 {
			s.Done = true
			return
		}
		s.Player = e.maze.playerStart
		for j := range s.Ghosts {
			s.Ghosts[j].Pos = s.Ghosts[j].Home
		}
		return
	}
}

func manhattan(a, b env.Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
