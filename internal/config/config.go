package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/inflynced/previews/internal/paths"
)

// Fallback font names accepted in "fallback_font".
const (
	FallbackBasic = "basic"
	FallbackGo    = "go"
)

// DefaultFontPaths lists the preferred TrueType font candidates.
var DefaultFontPaths = []string{"arial.ttf"}

// Banner describes the og-image layout.
type Banner struct {
	Width          int     `json:"width,omitempty"`
	Height         int     `json:"height,omitempty"`
	TopColor       string  `json:"top_color,omitempty"`
	Darken         float64 `json:"darken,omitempty"`
	Seed           int64   `json:"seed,omitempty"`
	Snowflakes     int     `json:"snowflakes,omitempty"`
	SnowflakeMin   int     `json:"snowflake_min,omitempty"`
	SnowflakeMax   int     `json:"snowflake_max,omitempty"`
	Margin         int     `json:"margin,omitempty"`
	Title          string  `json:"title,omitempty"`
	TitleSize      float64 `json:"title_size,omitempty"`
	TitleShadow    int     `json:"title_shadow,omitempty"`
	Subtitle       string  `json:"subtitle,omitempty"`
	SubtitleSize   float64 `json:"subtitle_size,omitempty"`
	SubtitleGap    int     `json:"subtitle_gap,omitempty"`
	SubtitleShadow int     `json:"subtitle_shadow,omitempty"`
	Glyph          string  `json:"glyph,omitempty"`
	GlyphGap       int     `json:"glyph_gap,omitempty"`
}

// Logo describes the square app icon layout.
type Logo struct {
	Size         int     `json:"size,omitempty"`
	Margin       int     `json:"margin,omitempty"`
	FillColor    string  `json:"fill_color,omitempty"`
	OutlineWidth float64 `json:"outline_width,omitempty"`
	Seed         int64   `json:"seed,omitempty"`
	Snowflakes   int     `json:"snowflakes,omitempty"`
	SnowflakeMin int     `json:"snowflake_min,omitempty"`
	SnowflakeMax int     `json:"snowflake_max,omitempty"`
	Inset        int     `json:"inset,omitempty"`
	Glyph        string  `json:"glyph,omitempty"`
	GlyphSize    float64 `json:"glyph_size,omitempty"`
	Variants     []int   `json:"variants,omitempty"`
}

// Config holds the top-level configuration.
type Config struct {
	OutputDir    string   `json:"output_dir,omitempty"`
	FontPaths    []string `json:"font_paths,omitempty"`
	FallbackFont string   `json:"fallback_font,omitempty"`
	Banner       Banner   `json:"banner"`
	Logo         Logo     `json:"logo"`
}

// Default returns the built-in layout used when no config file exists.
func Default() Config {
	return Config{
		OutputDir:    paths.DefaultOutputDir,
		FontPaths:    append([]string(nil), DefaultFontPaths...),
		FallbackFont: FallbackBasic,
		Banner: Banner{
			Width:          1200,
			Height:         630,
			TopColor:       "#FF7022",
			Darken:         0.2,
			Seed:           42,
			Snowflakes:     20,
			SnowflakeMin:   15,
			SnowflakeMax:   35,
			Margin:         50,
			Title:          "InflyncedPuzzle",
			TitleSize:      72,
			TitleShadow:    3,
			Subtitle:       "Sliding Puzzle Game for Farcaster",
			SubtitleSize:   36,
			SubtitleGap:    100,
			SubtitleShadow: 2,
			Glyph:          "🧩",
			GlyphGap:       120,
		},
		Logo: Logo{
			Size:         512,
			Margin:       50,
			FillColor:    "#FF5722",
			OutlineWidth: 8,
			Seed:         123,
			Snowflakes:   8,
			SnowflakeMin: 20,
			SnowflakeMax: 40,
			Inset:        50,
			Glyph:        "🧩",
			GlyphSize:    120,
		},
	}
}

// UnmarshalJSON sets defaults then decodes the JSON structure.
// Go's json.Unmarshal merges into existing struct fields, so only
// values present in JSON override the defaults.
func (c *Config) UnmarshalJSON(data []byte) error {
	*c = Default()
	type Alias Config
	return json.Unmarshal(data, (*Alias)(c))
}

// Load reads and parses a config file. It tries, in order:
//  1. explicitPath (if non-empty)
//  2. previews-config.json in the working directory
//  3. previews-config.json next to the running binary
//
// When none exists the built-in defaults are returned.
func Load(explicitPath string) (Config, error) {
	if explicitPath != "" {
		return readConfig(explicitPath)
	}
	if p := FindPath(); p != "" {
		return readConfig(p)
	}
	return Default(), nil
}

// FindPath returns the first config file found in the default locations,
// or "" if there is none.
func FindPath() string {
	if _, err := os.Stat(paths.ConfigFileName); err == nil {
		return paths.ConfigFileName
	}
	exe, err := os.Executable()
	if err == nil {
		p := filepath.Join(filepath.Dir(exe), paths.ConfigFileName)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func readConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the config for values that cannot produce an image.
// All problems are reported together.
func Validate(cfg Config) error {
	var errs []error
	if cfg.OutputDir == "" {
		errs = append(errs, errors.New("output_dir must not be empty"))
	}
	switch cfg.FallbackFont {
	case FallbackBasic, FallbackGo:
	default:
		errs = append(errs, fmt.Errorf("fallback_font %q: want %q or %q", cfg.FallbackFont, FallbackBasic, FallbackGo))
	}

	b := cfg.Banner
	if b.Width <= 0 || b.Height <= 0 {
		errs = append(errs, fmt.Errorf("banner: size %dx%d must be positive", b.Width, b.Height))
	}
	if b.Darken < 0 || b.Darken > 1 {
		errs = append(errs, fmt.Errorf("banner: darken %g outside [0,1]", b.Darken))
	}
	if _, err := ParseColor(b.TopColor); err != nil {
		errs = append(errs, fmt.Errorf("banner: top_color: %w", err))
	}
	errs = append(errs, checkFlakes("banner", b.Snowflakes, b.SnowflakeMin, b.SnowflakeMax)...)
	if 2*b.Margin > b.Width || 2*b.Margin > b.Height {
		errs = append(errs, fmt.Errorf("banner: margin %d leaves no room on a %dx%d canvas", b.Margin, b.Width, b.Height))
	}
	if b.TitleSize <= 0 || b.SubtitleSize <= 0 {
		errs = append(errs, errors.New("banner: font sizes must be positive"))
	}

	l := cfg.Logo
	if l.Size <= 0 {
		errs = append(errs, fmt.Errorf("logo: size %d must be positive", l.Size))
	}
	if 2*(l.Margin+l.Inset) > l.Size {
		errs = append(errs, fmt.Errorf("logo: margin %d + inset %d leaves no room in %d", l.Margin, l.Inset, l.Size))
	}
	if l.OutlineWidth < 0 {
		errs = append(errs, fmt.Errorf("logo: outline_width %g must not be negative", l.OutlineWidth))
	}
	if _, err := ParseColor(l.FillColor); err != nil {
		errs = append(errs, fmt.Errorf("logo: fill_color: %w", err))
	}
	errs = append(errs, checkFlakes("logo", l.Snowflakes, l.SnowflakeMin, l.SnowflakeMax)...)
	if l.GlyphSize <= 0 {
		errs = append(errs, errors.New("logo: glyph_size must be positive"))
	}
	for _, v := range l.Variants {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("logo: variant size %d must be positive", v))
		}
	}
	return errors.Join(errs...)
}

func checkFlakes(section string, n, lo, hi int) []error {
	var errs []error
	if n < 0 {
		errs = append(errs, fmt.Errorf("%s: snowflakes %d must not be negative", section, n))
	}
	if lo <= 0 || hi < lo {
		errs = append(errs, fmt.Errorf("%s: snowflake size range [%d,%d] is invalid", section, lo, hi))
	}
	return errs
}

// ParseColor parses a hex colour such as "#FF5722" into an opaque RGBA.
func ParseColor(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
