// Package glyph defines the fixed line-segment letter forms used for
// engraving text. Each glyph lives in a normalized 0-100 grid with a
// 10-unit-wide letter body; segments are straight lines only.
package glyph

import (
	"unicode"

	"github.com/Arkcutt12/Ark-ai-agent/internal/domain/geometry"
)

// Glyph is the segment list for one character. An empty list is a
// valid glyph (space draws nothing but still occupies an advance).
type Glyph struct {
	segments []geometry.Segment
}

// Segments returns the glyph strokes in drawing order.
// The returned slice must not be modified.
func (g Glyph) Segments() []geometry.Segment { return g.segments }

// Lookup returns the glyph for a character, after uppercasing.
// ok is false for characters outside the table; callers treat those
// as blanks, not errors.
func Lookup(ch rune) (Glyph, bool) {
	g, ok := table[unicode.ToUpper(ch)]
	return g, ok
}

// Supported reports whether the table defines strokes for the character.
func Supported(ch rune) bool {
	_, ok := Lookup(ch)
	return ok
}

func seg(x1, y1, x2, y2 float64) geometry.Segment {
	return geometry.Segment{
		Start: geometry.Point{X: x1, Y: y1},
		End:   geometry.Point{X: x2, Y: y2},
	}
}

// table holds the engraving strokes per character. Coordinates are in
// the 0-100 glyph grid; the dot of 'I' deliberately sits above the
// body at y=110 and must survive scaling untouched.
var table = map[rune]Glyph{
	'A': {segments: []geometry.Segment{
		seg(0, 0, 5, 100),
		seg(5, 100, 10, 0),
		seg(2.5, 50, 7.5, 50),
	}},
	'R': {segments: []geometry.Segment{
		seg(0, 0, 0, 100),
		seg(0, 100, 6, 100),
		seg(6, 100, 8, 90),
		seg(8, 90, 8, 60),
		seg(8, 60, 6, 50),
		seg(6, 50, 0, 50),
		seg(6, 50, 10, 0),
	}},
	'K': {segments: []geometry.Segment{
		seg(0, 0, 0, 100),
		seg(0, 50, 8, 100),
		seg(0, 50, 8, 0),
	}},
	'C': {segments: []geometry.Segment{
		seg(8, 20, 6, 0),
		seg(6, 0, 2, 0),
		seg(2, 0, 0, 20),
		seg(0, 20, 0, 80),
		seg(0, 80, 2, 100),
		seg(2, 100, 6, 100),
		seg(6, 100, 8, 80),
	}},
	'U': {segments: []geometry.Segment{
		seg(0, 100, 0, 20),
		seg(0, 20, 2, 0),
		seg(2, 0, 6, 0),
		seg(6, 0, 8, 20),
		seg(8, 20, 8, 100),
	}},
	'T': {segments: []geometry.Segment{
		seg(0, 100, 10, 100),
		seg(5, 100, 5, 0),
	}},
	'I': {segments: []geometry.Segment{
		seg(2, 0, 8, 0),
		seg(5, 0, 5, 100),
		seg(2, 100, 8, 100),
		// Decorative mark above the body.
		seg(8, 110, 12, 110),
	}},
	'O': {segments: []geometry.Segment{
		seg(2, 0, 6, 0),
		seg(6, 0, 8, 20),
		seg(8, 20, 8, 80),
		seg(8, 80, 6, 100),
		seg(6, 100, 2, 100),
		seg(2, 100, 0, 80),
		seg(0, 80, 0, 20),
		seg(0, 20, 2, 0),
	}},
	'N': {segments: []geometry.Segment{
		seg(0, 0, 0, 100),
		seg(0, 100, 8, 0),
		seg(8, 0, 8, 100),
	}},
	'E': {segments: []geometry.Segment{
		seg(0, 0, 0, 100),
		seg(0, 100, 8, 100),
		seg(0, 50, 6, 50),
		seg(0, 0, 8, 0),
	}},
	'L': {segments: []geometry.Segment{
		seg(0, 100, 0, 0),
		seg(0, 0, 8, 0),
	}},
	'S': {segments: []geometry.Segment{
		seg(8, 80, 6, 100),
		seg(6, 100, 2, 100),
		seg(2, 100, 0, 80),
		seg(0, 80, 0, 60),
		seg(0, 60, 2, 50),
		seg(2, 50, 6, 50),
		seg(6, 50, 8, 40),
		seg(8, 40, 8, 20),
		seg(8, 20, 6, 0),
		seg(6, 0, 2, 0),
		seg(2, 0, 0, 20),
	}},
	'P': {segments: []geometry.Segment{
		seg(0, 0, 0, 100),
		seg(0, 100, 6, 100),
		seg(6, 100, 8, 90),
		seg(8, 90, 8, 60),
		seg(8, 60, 6, 50),
		seg(6, 50, 0, 50),
	}},
	' ': {},
}
