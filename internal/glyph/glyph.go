package glyph

import (
	"github.com/mattn/go-runewidth"
)

// Shape is a multi-line piece of glyph art. Spaces are transparent.
type Shape struct {
	Rows []string
	W    int
	H    int
}

// New builds a Shape and measures its bounding box in terminal cells.
// Rows may have different widths; W is the widest one.
func New(rows ...string) Shape {
	w := 0
	for _, r := range rows {
		if rw := runewidth.StringWidth(r); rw > w {
			w = rw
		}
	}
	return Shape{Rows: rows, W: w, H: len(rows)}
}

// Fits reports whether the shape fits inside a w x h area.
func (s Shape) Fits(w, h int) bool {
	return s.W <= w && s.H <= h
}

// Each calls fn for every visible rune with its cell offset inside the
// shape and its display width. Zero-width runes are skipped.
func (s Shape) Each(fn func(x, y int, r rune, width int)) {
	for y, row := range s.Rows {
		x := 0
		for _, r := range row {
			cw := runewidth.RuneWidth(r)
			if cw == 0 {
				continue
			}
			if r != ' ' {
				fn(x, y, r, cw)
			}
			x += cw
		}
	}
}

// Tiers is the number of size tiers every shape set provides.
const Tiers = 3

// Snowflakes, smallest first.
var snowflakes = [Tiers]Shape{
	New("❄"),
	New(
		`\ | /`,
		`-=❄=-`,
		`/ | \`,
	),
	New(
		` \  |  / `,
		`  \ | /  `,
		`--- ❄ ---`,
		`  / | \  `,
		` /  |  \ `,
	),
}

// Snowmen are shown in easter egg mode.
var snowmen = [Tiers]Shape{
	New("☃"),
	New(
		` [=] `,
		` (o) `,
		`(   )`,
	),
	New(
		`  ___  `,
		` _|_|_ `,
		`  (o)  `,
		` (   ) `,
		`(     )`,
	),
}

// For returns the shape for a size tier. Out of range tiers are clamped.
func For(tier int, easterEgg bool) Shape {
	if tier < 0 {
		tier = 0
	}
	if tier >= Tiers {
		tier = Tiers - 1
	}
	if easterEgg {
		return snowmen[tier]
	}
	return snowflakes[tier]
}
