// Package preview builds the og-image banner and the logo icon.
package preview

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"

	"github.com/inflynced/previews/internal/compose"
	"github.com/inflynced/previews/internal/config"
)

// titleLift is how far above the vertical centre the title starts.
const titleLift = 80

// FaceSource hands out font faces by pixel size.
type FaceSource interface {
	Face(points float64) font.Face
}

// BuildBanner draws the social-share banner: a darkening gradient, scattered
// snowflakes, a shadowed title and subtitle, and a glyph above the title.
// Every pixel is opaque.
func BuildBanner(cfg config.Banner, faces FaceSource) (*image.RGBA, error) {
	top, err := config.ParseColor(cfg.TopColor)
	if err != nil {
		return nil, fmt.Errorf("banner top colour: %w", err)
	}

	c := compose.NewCanvas(cfg.Width, cfg.Height)
	c.Gradient(top, cfg.Darken)

	area := image.Rect(cfg.Margin, cfg.Margin, cfg.Width-cfg.Margin, cfg.Height-cfg.Margin)
	for _, f := range Scatter(cfg.Seed, cfg.Snowflakes, area, cfg.SnowflakeMin, cfg.SnowflakeMax) {
		compose.Snowflake(c, float64(f.X), float64(f.Y), float64(f.Size), color.White)
	}

	large := faces.Face(cfg.TitleSize)
	medium := faces.Face(cfg.SubtitleSize)

	titleX := compose.CenterX(cfg.Width, large, cfg.Title)
	titleY := cfg.Height/2 - titleLift
	c.ShadowText(large, cfg.Title, titleX, titleY, cfg.TitleShadow, color.White, color.Black)

	subX := compose.CenterX(cfg.Width, medium, cfg.Subtitle)
	subY := titleY + cfg.SubtitleGap
	c.ShadowText(medium, cfg.Subtitle, subX, subY, cfg.SubtitleShadow, color.White, color.Black)

	if cfg.Glyph != "" {
		glyphX := compose.CenterX(cfg.Width, large, cfg.Glyph)
		c.Text(large, cfg.Glyph, glyphX, titleY-cfg.GlyphGap, color.White)
	}
	return c.Image(), nil
}
