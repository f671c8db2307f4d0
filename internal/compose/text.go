package compose

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Drawable replaces runes face cannot draw with U+FFFD, or '?' when the
// face lacks that too. gg skips such runes silently, so measuring and
// drawing both go through here.
func Drawable(face font.Face, s string) string {
	return strings.Map(func(r rune) rune {
		if hasGlyph(face, r) {
			return r
		}
		if hasGlyph(face, '\ufffd') {
			return '\ufffd'
		}
		return '?'
	}, s)
}

func hasGlyph(face font.Face, r rune) bool {
	_, _, _, _, ok := face.Glyph(fixed.Point26_6{}, r)
	return ok
}

// Measure returns the pixel width and height of the bounding box of s.
func Measure(face font.Face, s string) (w, h int) {
	b, _ := font.BoundString(face, Drawable(face, s))
	return (b.Max.X - b.Min.X).Ceil(), (b.Max.Y - b.Min.Y).Ceil()
}

// CenterX returns the pen x that centres s on a canvas of width canvasW.
// Text wider than the canvas rounds towards the left edge.
func CenterX(canvasW int, face font.Face, s string) int {
	w, _ := Measure(face, s)
	return floorDiv(canvasW-w, 2)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
