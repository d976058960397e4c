package env

// Frame is a bounds-checked RGB pixel buffer produced by Environment.Render.
// Pixels are laid out row-major, three bytes per pixel, channel values 0-255.
type Frame struct {
	width  int
	height int
	pix    []byte
}

// NewFrame creates a frame with the given dimensions, filled with black.
func NewFrame(width, height int) *Frame {
	return &Frame{
		width:  width,
		height: height,
		pix:    make([]byte, width*height*3),
	}
}

// Width returns the frame width in pixels.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the frame height in pixels.
func (f *Frame) Height() int {
	return f.height
}

// Set writes the pixel at (x, y).
// Out-of-bounds coordinates are silently ignored.
func (f *Frame) Set(x, y int, r, g, b byte) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	i := (y*f.width + x) * 3
	f.pix[i] = r
	f.pix[i+1] = g
	f.pix[i+2] = b
}

// At returns the pixel at (x, y).
// Returns black for out-of-bounds coordinates.
func (f *Frame) At(x, y int) (r, g, b byte) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return 0, 0, 0
	}
	i := (y*f.width + x) * 3
	return f.pix[i], f.pix[i+1], f.pix[i+2]
}

// Fill sets every pixel to the given color.
func (f *Frame) Fill(r, g, b byte) {
	for i := 0; i < len(f.pix); i += 3 {
		f.pix[i] = r
		f.pix[i+1] = g
		f.pix[i+2] = b
	}
}

// Clone returns a deep copy of the frame.
func (f *Frame) Clone() *Frame {
	c := &Frame{
		width:  f.width,
		height: f.height,
		pix:    make([]byte, len(f.pix)),
	}
	copy(c.pix, f.pix)
	return c
}

// Equal reports whether two frames have identical dimensions and pixels.
func (f *Frame) Equal(other *Frame) bool {
	if other == nil || f.width != other.width || f.height != other.height {
		return false
	}
	for i := range f.pix {
		if f.pix[i] != other.pix[i] {
			return false
		}
	}
	return true
}
