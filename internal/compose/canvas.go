// Package compose draws the decorative primitives shared by the preview
// images: gradients, circles, snowflakes and top-left anchored text.
package compose

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
)

// Surface is the single primitive a snowflake needs.
type Surface interface {
	Line(x1, y1, x2, y2, width float64, c color.Color)
}

// Canvas is a fixed-size pixel buffer with a gg context drawing into it.
type Canvas struct {
	img *image.RGBA
	dc  *gg.Context
}

// NewCanvas returns a fully transparent w×h canvas.
func NewCanvas(w, h int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	return &Canvas{img: img, dc: gg.NewContextForRGBA(img)}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.img.Bounds().Dx() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.img.Bounds().Dy() }

// Image returns the underlying pixel buffer.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Fill paints the whole canvas with col.
func (c *Canvas) Fill(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// Gradient paints one solid colour per scanline, darkening top towards the
// bottom edge by the given factor.
func (c *Canvas) Gradient(top color.RGBA, darken float64) {
	w, h := c.Width(), c.Height()
	for y := 0; y < h; y++ {
		row := image.Rect(0, y, w, y+1)
		draw.Draw(c.img, row, image.NewUniform(GradientRow(top, y, h, darken)), image.Point{}, draw.Src)
	}
}

// GradientRow returns the colour of scanline y out of h. Each channel is
// truncated from c·(1 − y/h·darken).
func GradientRow(top color.RGBA, y, h int, darken float64) color.RGBA {
	f := 1 - float64(y)/float64(h)*darken
	return color.RGBA{
		R: uint8(float64(top.R) * f),
		G: uint8(float64(top.G) * f),
		B: uint8(float64(top.B) * f),
		A: 255,
	}
}

// Line strokes a straight segment.
func (c *Canvas) Line(x1, y1, x2, y2, width float64, col color.Color) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.DrawLine(x1, y1, x2, y2)
	c.dc.Stroke()
}

// Circle fills a disc of radius r and strokes an outline of the given width
// inside its edge, so nothing is painted beyond r.
func (c *Canvas) Circle(cx, cy, r float64, fill, outline color.Color, outlineWidth float64) {
	c.dc.SetColor(fill)
	c.dc.DrawCircle(cx, cy, r)
	c.dc.Fill()
	if outlineWidth <= 0 {
		return
	}
	c.dc.SetColor(outline)
	c.dc.SetLineWidth(outlineWidth)
	c.dc.DrawCircle(cx, cy, r-outlineWidth/2)
	c.dc.Stroke()
}

// Text draws s with the top of the face's ascent at y and the pen at x.
// Runes missing from face are drawn as its replacement glyph.
func (c *Canvas) Text(face font.Face, s string, x, y int, col color.Color) {
	c.dc.SetFontFace(face)
	c.dc.SetColor(col)
	baseline := y + face.Metrics().Ascent.Ceil()
	c.dc.DrawString(Drawable(face, s), float64(x), float64(baseline))
}

// ShadowText draws s in shadow colour at (x+offset, y+offset), then in col
// at (x, y).
func (c *Canvas) ShadowText(face font.Face, s string, x, y, offset int, col, shadow color.Color) {
	c.Text(face, s, x+offset, y+offset, shadow)
	c.Text(face, s, x, y, col)
}
