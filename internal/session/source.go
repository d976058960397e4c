package session

import (
	"github.com/vovakirdan/tui-pacman/internal/env"
	"github.com/vovakirdan/tui-pacman/internal/input"
)

// actionTable maps the source action vocabulary to the environment's.
// Source values absent from the table translate to NOOP; that permissive
// default is deliberate, never an error.
var actionTable = map[input.Action]env.Action{
	input.ActionNone:  env.ActNoop,
	input.ActionUp:    env.ActUp,
	input.ActionRight: env.ActRight,
	input.ActionLeft:  env.ActLeft,
	input.ActionDown:  env.ActDown,
}

// Translate maps a source action into the environment action vocabulary.
func Translate(a input.Action) env.Action {
	if dst, ok := actionTable[a]; ok {
		return dst
	}
	return env.ActNoop
}

// ResolveFrame reduces an input frame to exactly one source action.
// Multiple simultaneously held directions resolve by a fixed precedence:
// Up, Right, Left, Down, then Fire. The order is stable across ticks so
// identical input state always yields the same action.
func ResolveFrame(f input.Frame) input.Action {
	switch {
	case f.Has(input.ActionUp):
		return input.ActionUp
	case f.Has(input.ActionRight):
		return input.ActionRight
	case f.Has(input.ActionLeft):
		return input.ActionLeft
	case f.Has(input.ActionDown):
		return input.ActionDown
	case f.Has(input.ActionFire):
		return input.ActionFire
	}
	return input.ActionNone
}

// DefaultBlockSize is how many steps a scripted direction is held.
const DefaultBlockSize = 10

// scriptedCycle is the direction order of the scripted policy.
var scriptedCycle = [...]input.Action{
	input.ActionUp,
	input.ActionRight,
	input.ActionLeft,
	input.ActionDown,
}

// Scripted is a deterministic action source: a pure function of the step
// index that holds each direction for BlockSize steps, cycling
// Up, Right, Left, Down. Test harnesses can replay it exactly.
type Scripted struct {
	BlockSize int
}

// NewScripted creates a scripted source with the given block size.
// Non-positive sizes fall back to DefaultBlockSize.
func NewScripted(blockSize int) Scripted {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	return Scripted{BlockSize: blockSize}
}

// Action returns the action for the given step index.
func (s Scripted) Action(step int) input.Action {
	if step < 0 {
		step = 0
	}
	block := s.BlockSize
	if block <= 0 {
		block = DefaultBlockSize
	}
	return scriptedCycle[(step/block)%len(scriptedCycle)]
}
