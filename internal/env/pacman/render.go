package pacman

import "github.com/vovakirdan/tui-pacman/internal/env"

// rgb is a packed render color.
type rgb struct {
	r, g, b byte
}

// Palette. Ghost colors cycle in spawn order.
var (
	colorWall    = rgb{33, 33, 222}
	colorFloor   = rgb{0, 0, 0}
	colorDot     = rgb{255, 228, 181}
	colorPower   = rgb{255, 255, 255}
	colorPlayer  = rgb{255, 255, 0}
	colorFright  = rgb{66, 66, 255}
	ghostPalette = []rgb{
		{255, 0, 0},    // blinky
		{255, 184, 255}, // pinky
		{0, 255, 255},  // inky
		{255, 184, 82}, // clyde
	}
)

// Render rasterizes the state into an RGB frame, one pixel per maze cell.
// A pure function of the state: identical states render bit-identically.
func (e *Env) Render(state env.State) *env.Frame {
	s := state.(State)
	m := e.maze

	f := env.NewFrame(m.w, m.h)
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			c := colorFloor
			switch {
			case m.wallAt(x, y):
				c = colorWall
			case s.Pellets[m.idx(x, y)] == pelletDot:
				c = colorDot
			case s.Pellets[m.idx(x, y)] == pelletPower:
				c = colorPower
			}
			f.Set(x, y, c.r, c.g, c.b)
		}
	}

	for i, g := range s.Ghosts {
		c := ghostPalette[i%len(ghostPalette)]
		if s.Frightened > 0 {
			c = colorFright
		}
		f.Set(g.Pos.X, g.Pos.Y, c.r, c.g, c.b)
	}

	f.Set(s.Player.X, s.Player.Y, colorPlayer.r, colorPlayer.g, colorPlayer.b)
	return f
}
