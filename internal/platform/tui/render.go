package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pacman/internal/env"
)

// halfBlock shows two vertically stacked pixels per terminal cell:
// foreground paints the top pixel, background the bottom one.
const halfBlock = "▀"

// RenderFrame converts an RGB frame to a styled string for display,
// upscaled by an integer factor along both axes (nearest-neighbor; source
// frames are small and pixel-exact reproduction is expected). Adjacent
// cells with the same color pair share one style run to minimize ANSI
// escape sequences. Stateless: safe to call every tick, including while
// paused.
func RenderFrame(f *env.Frame, scale int) string {
	if f == nil {
		return ""
	}
	if scale < 1 {
		scale = 1
	}

	outW := f.Width() * scale
	outH := f.Height() * scale
	rows := (outH + 1) / 2

	var sb strings.Builder
	sb.Grow(outW*rows*2 + rows)

	for row := 0; row < rows; row++ {
		if row > 0 {
			sb.WriteRune('\n')
		}

		topY := (row * 2) / scale
		bottomY := (row*2 + 1) / scale

		x := 0
		for x < outW {
			top := pixelHex(f, x/scale, topY)
			bottom := "#000000"
			if row*2+1 < outH {
				bottom = pixelHex(f, x/scale, bottomY)
			}

			// Collect the run of cells sharing this color pair
			runLen := 0
			for x < outW {
				t := pixelHex(f, x/scale, topY)
				b := "#000000"
				if row*2+1 < outH {
					b = pixelHex(f, x/scale, bottomY)
				}
				if t != top || b != bottom {
					break
				}
				runLen++
				x++
			}

			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(top)).
				Background(lipgloss.Color(bottom))
			sb.WriteString(style.Render(strings.Repeat(halfBlock, runLen)))
		}
	}
	return sb.String()
}

// pixelHex reads a pixel as a hex color string.
func pixelHex(f *env.Frame, x, y int) string {
	r, g, b := f.At(x, y)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// DisplaySize returns the terminal cell footprint of a frame at the given
// scale: width in cells, height in text rows (two pixels per row).
func DisplaySize(f *env.Frame, scale int) (w, h int) {
	if f == nil {
		return 0, 0
	}
	if scale < 1 {
		scale = 1
	}
	return f.Width() * scale, (f.Height()*scale + 1) / 2
}
