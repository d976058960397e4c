package session

import (
	"testing"

	"github.com/vovakirdan/tui-pacman/internal/env"
	"github.com/vovakirdan/tui-pacman/internal/input"
)

func TestTranslateTable(t *testing.T) {
	cases := []struct {
		src  input.Action
		want env.Action
	}{
		{input.ActionNone, env.ActNoop},
		{input.ActionUp, env.ActUp},
		{input.ActionRight, env.ActRight},
		{input.ActionLeft, env.ActLeft},
		{input.ActionDown, env.ActDown},
	}

	for _, c := range cases {
		if got := Translate(c.src); got != c.want {
			t.Errorf("Translate(%s) = %s, want %s", c.src, got, c.want)
		}
	}
}

func TestTranslateUnknownDefaultsToNoop(t *testing.T) {
	// Values outside the table map to NOOP, never an error
	for _, src := range []input.Action{input.ActionFire, input.ActionPause, input.Action(99), input.Action(-7)} {
		if got := Translate(src); got != env.ActNoop {
			t.Errorf("Translate(%d) = %s, want noop", src, got)
		}
	}
}

func TestResolveFramePrecedence(t *testing.T) {
	cases := []struct {
		held []input.Action
		want input.Action
	}{
		{nil, input.ActionNone},
		{[]input.Action{input.ActionDown}, input.ActionDown},
		{[]input.Action{input.ActionUp, input.ActionDown}, input.ActionUp},
		{[]input.Action{input.ActionLeft, input.ActionRight}, input.ActionRight},
		{[]input.Action{input.ActionDown, input.ActionLeft}, input.ActionLeft},
		{[]input.Action{input.ActionUp, input.ActionRight, input.ActionLeft, input.ActionDown}, input.ActionUp},
		{[]input.Action{input.ActionFire, input.ActionDown}, input.ActionDown},
		{[]input.Action{input.ActionFire}, input.ActionFire},
	}

	for _, c := range cases {
		frame := input.NewFrame()
		for _, a := range c.held {
			frame.Set(a)
		}
		if got := ResolveFrame(frame); got != c.want {
			t.Errorf("ResolveFrame(%v) = %s, want %s", c.held, got, c.want)
		}
	}
}

func TestResolveFrameStable(t *testing.T) {
	// Same held keys must resolve identically on every tick
	frame := input.NewFrame()
	frame.Set(input.ActionLeft)
	frame.Set(input.ActionDown)

	first := ResolveFrame(frame)
	for i := 0; i < 50; i++ {
		if got := ResolveFrame(frame); got != first {
			t.Fatalf("resolution changed between ticks: %s vs %s", first, got)
		}
	}
}

func TestScriptedBlockRule(t *testing.T) {
	s := NewScripted(10)

	first := s.Action(0)
	for i := 1; i < 10; i++ {
		if got := s.Action(i); got != first {
			t.Errorf("Action(%d) = %s, want %s (same block)", i, got, first)
		}
	}

	if s.Action(10) == first {
		t.Error("Action(10) should differ from block 0")
	}
}

func TestScriptedCycle(t *testing.T) {
	s := NewScripted(10)

	want := []input.Action{
		input.ActionUp,    // steps 0-9
		input.ActionRight, // steps 10-19
		input.ActionLeft,  // steps 20-29
		input.ActionDown,  // steps 30-39
		input.ActionUp,    // steps 40-49, cycle wraps
	}
	for block, a := range want {
		if got := s.Action(block * 10); got != a {
			t.Errorf("block %d: got %s, want %s", block, got, a)
		}
	}
}

func TestScriptedDefaultBlockSize(t *testing.T) {
	s := NewScripted(0)
	if s.BlockSize != DefaultBlockSize {
		t.Errorf("BlockSize = %d, want %d", s.BlockSize, DefaultBlockSize)
	}
}
