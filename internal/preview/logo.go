package preview

import (
	"fmt"
	"image"
	"image/color"

	"github.com/inflynced/previews/internal/compose"
	"github.com/inflynced/previews/internal/config"
)

// BuildLogo draws the app icon on a transparent square: an outlined disc,
// snowflakes kept inset from its edge, and a large centred glyph.
func BuildLogo(cfg config.Logo, faces FaceSource) (*image.RGBA, error) {
	fill, err := config.ParseColor(cfg.FillColor)
	if err != nil {
		return nil, fmt.Errorf("logo fill colour: %w", err)
	}

	c := compose.NewCanvas(cfg.Size, cfg.Size)
	half := float64(cfg.Size) / 2
	c.Circle(half, half, half-float64(cfg.Margin), fill, color.White, cfg.OutlineWidth)

	lo := cfg.Margin + cfg.Inset
	hi := cfg.Size - cfg.Margin - cfg.Inset
	for _, f := range Scatter(cfg.Seed, cfg.Snowflakes, image.Rect(lo, lo, hi, hi), cfg.SnowflakeMin, cfg.SnowflakeMax) {
		compose.Snowflake(c, float64(f.X), float64(f.Y), float64(f.Size), color.White)
	}

	if cfg.Glyph != "" {
		face := faces.Face(cfg.GlyphSize)
		w, h := compose.Measure(face, cfg.Glyph)
		c.Text(face, cfg.Glyph, (cfg.Size-w)/2, (cfg.Size-h)/2, color.White)
	}
	return c.Image(), nil
}
