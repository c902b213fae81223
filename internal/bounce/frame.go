package bounce

import "strings"

// Cell is one terminal cell of a frame. A zero Rune is an empty cell.
// Cont marks the right half of a double-width rune drawn in the cell to
// its left; renderers should emit nothing for it.
type Cell struct {
	Rune  rune
	Color Color
	Cont  bool
}

// FrameBuffer is a full-screen snapshot of the viewport.
type FrameBuffer struct {
	Width  int
	Height int
	cells  []Cell // flat: y*Width + x
}

func NewFrameBuffer(w, h int) FrameBuffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return FrameBuffer{Width: w, Height: h, cells: make([]Cell, w*h)}
}

func (f *FrameBuffer) Set(x, y int, c Cell) {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return
	}
	f.cells[y*f.Width+x] = c
}

// At returns the cell at (x, y), or an empty cell when out of bounds.
func (f FrameBuffer) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return Cell{}
	}
	return f.cells[y*f.Width+x]
}

// Row returns the cells of row y. The slice aliases the buffer.
func (f FrameBuffer) Row(y int) []Cell {
	if y < 0 || y >= f.Height {
		return nil
	}
	return f.cells[y*f.Width : (y+1)*f.Width]
}

// String renders the frame as plain text without colors, one line per row.
func (f FrameBuffer) String() string {
	var b strings.Builder
	b.Grow((f.Width + 1) * f.Height)
	for y := 0; y < f.Height; y++ {
		for _, c := range f.Row(y) {
			switch {
			case c.Cont:
			case c.Rune == 0:
				b.WriteByte(' ')
			default:
				b.WriteRune(c.Rune)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
