package config

import (
	"encoding/json"
	"go/parser"
	"go/token"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Validate(Default()); err != nil {
		t.Fatalf("Validate(Default()) = %v", err)
	}
}

func TestUnmarshalEmptyKeepsDefaults(t *testing.T) {
	var cfg Config
	if err := json.Unmarshal([]byte(`{}`), &cfg); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	def := Default()
	if cfg.OutputDir != def.OutputDir {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, def.OutputDir)
	}
	if cfg.Banner.Seed != 42 || cfg.Logo.Seed != 123 {
		t.Errorf("seeds = %d/%d, want 42/123", cfg.Banner.Seed, cfg.Logo.Seed)
	}
	if cfg.Banner.Width != 1200 || cfg.Banner.Height != 630 {
		t.Errorf("banner = %dx%d, want 1200x630", cfg.Banner.Width, cfg.Banner.Height)
	}
	if cfg.Logo.Size != 512 {
		t.Errorf("logo size = %d, want 512", cfg.Logo.Size)
	}
}

func TestUnmarshalPartialOverride(t *testing.T) {
	data := []byte(`{
		"output_dir": "dist",
		"banner": { "title": "Other", "seed": 7 },
		"logo": { "variants": [192, 32] }
	}`)
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if cfg.OutputDir != "dist" {
		t.Errorf("OutputDir = %q, want dist", cfg.OutputDir)
	}
	if cfg.Banner.Title != "Other" || cfg.Banner.Seed != 7 {
		t.Errorf("banner = %+v", cfg.Banner)
	}
	// Untouched siblings keep their defaults.
	if cfg.Banner.Subtitle != "Sliding Puzzle Game for Farcaster" {
		t.Errorf("Subtitle = %q", cfg.Banner.Subtitle)
	}
	if cfg.Banner.Snowflakes != 20 {
		t.Errorf("Snowflakes = %d, want 20", cfg.Banner.Snowflakes)
	}
	if len(cfg.Logo.Variants) != 2 || cfg.Logo.Variants[0] != 192 {
		t.Errorf("Variants = %v, want [192 32]", cfg.Logo.Variants)
	}
	if cfg.Logo.FillColor != "#FF5722" {
		t.Errorf("FillColor = %q", cfg.Logo.FillColor)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"empty output", func(c *Config) { c.OutputDir = "" }, "output_dir"},
		{"fallback", func(c *Config) { c.FallbackFont = "comic" }, "fallback_font"},
		{"banner size", func(c *Config) { c.Banner.Width = 0 }, "banner: size"},
		{"darken", func(c *Config) { c.Banner.Darken = 1.5 }, "darken"},
		{"top color", func(c *Config) { c.Banner.TopColor = "orange" }, "top_color"},
		{"flake range", func(c *Config) { c.Banner.SnowflakeMax = 1 }, "size range"},
		{"banner margin", func(c *Config) { c.Banner.Margin = 400 }, "margin"},
		{"logo inset", func(c *Config) { c.Logo.Inset = 300 }, "inset"},
		{"fill color", func(c *Config) { c.Logo.FillColor = "#GG0000" }, "fill_color"},
		{"variant", func(c *Config) { c.Logo.Variants = []int{64, 0} }, "variant size 0"},
		{"outline", func(c *Config) { c.Logo.OutlineWidth = -1 }, "outline_width"},
	}
	for _, tt := range tests {
		cfg := Default()
		tt.mutate(&cfg)
		err := Validate(cfg)
		if err == nil {
			t.Errorf("%s: expected error", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: error %q does not mention %q", tt.name, err, tt.want)
		}
	}
}

func TestParseColor(t *testing.T) {
	got, err := ParseColor("#FF5722")
	if err != nil {
		t.Fatalf("ParseColor: %v", err)
	}
	want := color.RGBA{R: 0xFF, G: 0x57, B: 0x22, A: 0xFF}
	if got != want {
		t.Errorf("ParseColor = %v, want %v", got, want)
	}
	if _, err := ParseColor("nope"); err == nil {
		t.Error("expected error for invalid colour")
	}
}

func TestLoadExplicitPath(t *testing.T) {
	p := filepath.Join(t.TempDir(), "previews-config.json")
	writeFile(t, p, `{"output_dir": "out"}`)

	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.OutputDir != "out" {
		t.Errorf("OutputDir = %q, want out", cfg.OutputDir)
	}
}

func TestLoadExplicitMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("expected error for missing explicit config")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	writeFile(t, p, `{"output_dir": `)
	if _, err := Load(p); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadFromWorkingDir(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, filepath.Join(dir, "previews-config.json"), `{"fallback_font": "go"}`)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.FallbackFont != FallbackGo {
		t.Errorf("FallbackFont = %q, want %q", cfg.FallbackFont, FallbackGo)
	}
}

// A noimaging build links config, so it must not pull in the drawing stack.
func TestNoDrawingImports(t *testing.T) {
	banned := []string{
		"github.com/inflynced/previews/internal/fonts",
		"github.com/inflynced/previews/internal/compose",
		"github.com/inflynced/previews/internal/preview",
		"github.com/fogleman/gg",
		"github.com/golang/freetype",
		"golang.org/x/image",
	}
	files, err := filepath.Glob("*.go")
	if err != nil {
		t.Fatal(err)
	}
	fset := token.NewFileSet()
	for _, name := range files {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, name, nil, parser.ImportsOnly)
		if err != nil {
			t.Fatalf("ParseFile(%s): %v", name, err)
		}
		for _, imp := range f.Imports {
			path := strings.Trim(imp.Path.Value, `"`)
			for _, b := range banned {
				if strings.HasPrefix(path, b) {
					t.Errorf("%s imports %s", name, path)
				}
			}
		}
	}
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("WriteFile(%s): %v", path, err)
	}
}
