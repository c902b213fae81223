package bounce

import (
	"fmt"
	"strings"

	"github.com/fchimpan/snowflake-bounce/internal/glyph"
)

// Color is one entry of the cyclic glyph palette.
type Color int

const (
	White Color = iota
	Cyan
	Blue
	Magenta
	Red
	Yellow
	Green

	numColors
)

var colorNames = [numColors]string{"white", "cyan", "blue", "magenta", "red", "yellow", "green"}

// Colors returns the palette in cycling order.
func Colors() []Color {
	out := make([]Color, numColors)
	for i := range out {
		out[i] = Color(i)
	}
	return out
}

// Next returns the following palette entry, wrapping after the last one.
func (c Color) Next() Color {
	return Color((int(c.normalize()) + 1) % int(numColors))
}

func (c Color) normalize() Color {
	if c < 0 || c >= numColors {
		return White
	}
	return c
}

func (c Color) String() string {
	return colorNames[c.normalize()]
}

func ParseColor(s string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range colorNames {
		if n == name {
			return Color(i), nil
		}
	}
	return White, fmt.Errorf("unknown color %q (expected one of %s)", s, strings.Join(colorNames[:], ", "))
}

// Size is a glyph size tier. Larger tiers draw larger art and so bounce off
// the walls earlier.
type Size int

const (
	Small Size = iota
	Medium
	Large

	numSizes
)

var sizeNames = [numSizes]string{"small", "medium", "large"}

func (s Size) Next() Size {
	return Size((int(s.normalize()) + 1) % int(numSizes))
}

func (s Size) normalize() Size {
	if s < 0 || s >= numSizes {
		return Small
	}
	return s
}

func (s Size) String() string {
	return sizeNames[s.normalize()]
}

func ParseSize(s string) (Size, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range sizeNames {
		if n == name {
			return Size(i), nil
		}
	}
	return Small, fmt.Errorf("unknown size %q (expected one of %s)", s, strings.Join(sizeNames[:], ", "))
}

// Mode selects between the snowflake and the easter egg glyph set.
type Mode int

const (
	Normal Mode = iota
	EasterEgg
)

func (m Mode) Toggle() Mode {
	if m == EasterEgg {
		return Normal
	}
	return EasterEgg
}

func (m Mode) String() string {
	if m == EasterEgg {
		return "easter egg"
	}
	return "normal"
}

func shapeFor(s Size, m Mode) glyph.Shape {
	return glyph.For(int(s.normalize()), m == EasterEgg)
}
