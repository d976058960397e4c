package pacman

import "github.com/vovakirdan/tui-pacman/internal/env"

// Snapshot captures the observable episode state for determinism testing.
type Snapshot struct {
	Steps       int
	Score       int
	Lives       int
	Player      env.Position
	Ghosts      []env.Position
	PelletsLeft int
	Frightened  int
	Done        bool
}

// TakeSnapshot extracts a snapshot from an episode state.
func TakeSnapshot(state env.State) Snapshot {
	s := state.(State)
	ghosts := make([]env.Position, len(s.Ghosts))
	for i, g := range s.Ghosts {
		ghosts[i] = g.Pos
	}
	return Snapshot{
		Steps:       s.Steps,
		Score:       s.Score,
		Lives:       s.Lives,
		Player:      s.Player,
		Ghosts:      ghosts,
		PelletsLeft: s.PelletsNum,
		Frightened:  s.Frightened,
		Done:        s.Done,
	}
}
