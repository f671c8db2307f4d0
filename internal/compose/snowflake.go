package compose

import (
	"image/color"
	"math"
)

const (
	strokeWidth = 2
	tickWidth   = 1
	diagonal    = 0.7
	tickInner   = 0.5
	tickOuter   = 0.7
)

// Snowflake draws a cross, a diagonal pair and eight short radial ticks
// centred on (cx, cy).
func Snowflake(s Surface, cx, cy, size float64, c color.Color) {
	s.Line(cx-size, cy, cx+size, cy, strokeWidth, c)
	s.Line(cx, cy-size, cx, cy+size, strokeWidth, c)

	d := size * diagonal
	s.Line(cx-d, cy-d, cx+d, cy+d, strokeWidth, c)
	s.Line(cx-d, cy+d, cx+d, cy-d, strokeWidth, c)

	for deg := 0; deg < 360; deg += 45 {
		rad := float64(deg) * (math.Pi / 180)
		cos, sin := math.Cos(rad), math.Sin(rad)
		x1 := cx + size*tickInner*cos
		y1 := cy + size*tickInner*sin
		x2 := cx + size*tickOuter*cos
		y2 := cy + size*tickOuter*sin
		s.Line(x1, y1, x2, y2, tickWidth, c)
	}
}
