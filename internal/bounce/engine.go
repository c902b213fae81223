package bounce

import (
	"math"
	"math/rand/v2"
)

// Viewport is the drawable terminal area in cells.
type Viewport struct {
	Width  int
	Height int
}

// Glyph is the bouncing symbol. X and Y are the top-left corner of its
// bounding box; DX and DY are cells per tick and never zero.
type Glyph struct {
	X  float64
	Y  float64
	DX float64
	DY float64

	Color Color
	Size  Size
	Mode  Mode
}

type Status int

const (
	Running Status = iota
	Terminated
)

// Stats counts what happened since the engine started.
type Stats struct {
	Ticks   int
	Bounces int
	Corners int // bounces on both axes in the same tick
}

type Options struct {
	Viewport Viewport
	Color    Color
	Size     Size
	Seed     uint64

	// ColorOnBounce advances the color on every wall bounce.
	ColorOnBounce bool
}

// Default per-tick speed. Terminal cells are roughly twice as tall as they
// are wide, so the vertical component is halved to keep the path diagonal.
const (
	defaultDX = 1.0
	defaultDY = 0.5
)

// Engine owns the glyph and viewport state. It does no I/O.
type Engine struct {
	Viewport Viewport
	Glyph    Glyph
	Stats    Stats

	ColorOnBounce bool

	status Status
}

// New returns a running engine with the glyph placed at a random position
// inside the viewport and moving diagonally in a random direction.
func New(opts Options) *Engine {
	vp := opts.Viewport
	if vp.Width < 1 {
		vp.Width = 1
	}
	if vp.Height < 1 {
		vp.Height = 1
	}

	e := &Engine{
		Viewport:      vp,
		ColorOnBounce: opts.ColorOnBounce,
		Glyph: Glyph{
			DX:    defaultDX,
			DY:    defaultDY,
			Color: opts.Color.normalize(),
			Size:  opts.Size.normalize(),
		},
	}
	e.fit()

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	maxX, maxY := e.limits()
	e.Glyph.X = float64(rng.IntN(int(maxX) + 1))
	e.Glyph.Y = float64(rng.IntN(int(maxY) + 1))
	if rng.IntN(2) == 0 {
		e.Glyph.DX = -e.Glyph.DX
	}
	if rng.IntN(2) == 0 {
		e.Glyph.DY = -e.Glyph.DY
	}
	return e
}

func (e *Engine) Status() Status { return e.status }

func (e *Engine) Terminated() bool { return e.status == Terminated }

// Extent returns the width and height of the active glyph in cells.
func (e *Engine) Extent() (int, int) {
	s := shapeFor(e.Glyph.Size, e.Glyph.Mode)
	return s.W, s.H
}

// limits returns the largest X and Y the glyph's top-left corner may take.
func (e *Engine) limits() (float64, float64) {
	w, h := e.Extent()
	return float64(max(e.Viewport.Width-w, 0)), float64(max(e.Viewport.Height-h, 0))
}

// Advance moves the glyph one tick. An axis whose next position would leave
// the viewport is clamped to the wall and its velocity reflected, so the
// glyph never overshoots.
func (e *Engine) Advance() {
	if e.status == Terminated {
		return
	}
	maxX, maxY := e.limits()

	hitX := reflect(&e.Glyph.X, &e.Glyph.DX, maxX)
	hitY := reflect(&e.Glyph.Y, &e.Glyph.DY, maxY)

	e.Stats.Ticks++
	if hitX || hitY {
		e.Stats.Bounces++
		if e.ColorOnBounce {
			e.Glyph.Color = e.Glyph.Color.Next()
		}
	}
	if hitX && hitY {
		e.Stats.Corners++
	}
}

// reflect reports no hit when the glyph fills the axis: it cannot move
// there, so pinning it to the wall is not a bounce.
func reflect(pos, vel *float64, limit float64) bool {
	if limit <= 0 {
		*pos = 0
		return false
	}
	next := *pos + *vel
	switch {
	case next < 0:
		*pos = 0
		*vel = math.Abs(*vel)
		return true
	case next > limit:
		*pos = limit
		*vel = -math.Abs(*vel)
		return true
	}
	*pos = next
	return false
}

// Handle applies one input event. It reports false when the event was
// ignored: the engine is terminated, the event is unknown, or a resize
// asked for an empty viewport.
func (e *Engine) Handle(ev Event) bool {
	if e.status == Terminated {
		return false
	}
	switch ev := ev.(type) {
	case Tick:
		e.Advance()
	case ChangeColor:
		e.Glyph.Color = e.Glyph.Color.Next()
	case ChangeSize:
		e.cycleSize()
	case ToggleEasterEgg:
		e.Glyph.Mode = e.Glyph.Mode.Toggle()
		e.fit()
	case Resize:
		if ev.Width < 1 || ev.Height < 1 {
			return false
		}
		e.Viewport = Viewport{Width: ev.Width, Height: ev.Height}
		e.fit()
	case Quit:
		e.status = Terminated
	default:
		return false
	}
	return true
}

// cycleSize moves to the next tier that fits the viewport. Small always
// fits, so the loop ends at the latest when it wraps around.
func (e *Engine) cycleSize() {
	next := e.Glyph.Size
	for range numSizes {
		next = next.Next()
		if shapeFor(next, e.Glyph.Mode).Fits(e.Viewport.Width, e.Viewport.Height) {
			break
		}
	}
	e.Glyph.Size = next
	e.clamp()
}

// fit steps the size down until the glyph fits, then clamps the position.
func (e *Engine) fit() {
	for e.Glyph.Size > Small && !shapeFor(e.Glyph.Size, e.Glyph.Mode).Fits(e.Viewport.Width, e.Viewport.Height) {
		e.Glyph.Size--
	}
	e.clamp()
}

func (e *Engine) clamp() {
	maxX, maxY := e.limits()
	e.Glyph.X = min(max(e.Glyph.X, 0), maxX)
	e.Glyph.Y = min(max(e.Glyph.Y, 0), maxY)
}

// Render draws the glyph into a fresh frame at its floored position.
func (e *Engine) Render() FrameBuffer {
	fb := NewFrameBuffer(e.Viewport.Width, e.Viewport.Height)
	x0 := int(math.Floor(e.Glyph.X))
	y0 := int(math.Floor(e.Glyph.Y))
	color := e.Glyph.Color.normalize()

	shapeFor(e.Glyph.Size, e.Glyph.Mode).Each(func(x, y int, r rune, width int) {
		fb.Set(x0+x, y0+y, Cell{Rune: r, Color: color})
		for i := 1; i < width; i++ {
			fb.Set(x0+x+i, y0+y, Cell{Color: color, Cont: true})
		}
	})
	return fb
}
