// Package fonts resolves the preferred TrueType font and falls back to a
// built-in face when it cannot be found.
package fonts

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/inflynced/previews/internal/config"
)

// Fallback names, as accepted by the "fallback_font" config key.
const (
	Basic = config.FallbackBasic
	Go    = config.FallbackGo
)

// Loader hands out faces of one resolved font at any size. Resolution
// happens on first use and never fails: a missing or unparsable font
// selects the fallback.
type Loader struct {
	paths    []string
	fallback string

	resolved bool
	font     *truetype.Font
	source   string
}

// New returns a Loader trying candidates in order, then fallback.
func New(candidates []string, fallback string) *Loader {
	return &Loader{paths: candidates, fallback: fallback}
}

// Face returns a face at the given pixel size.
func (l *Loader) Face(points float64) font.Face {
	l.resolve()
	if l.font == nil {
		return basicfont.Face7x13
	}
	return truetype.NewFace(l.font, &truetype.Options{
		Size:    points,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Source describes the font in use: a file path, "go" or "basic".
func (l *Loader) Source() string {
	l.resolve()
	return l.source
}

func (l *Loader) resolve() {
	if l.resolved {
		return
	}
	l.resolved = true
	for _, p := range l.paths {
		for _, candidate := range lookup(p) {
			if f, ok := parseFile(candidate); ok {
				l.font, l.source = f, candidate
				return
			}
		}
	}
	if l.fallback == Go {
		if f, err := truetype.Parse(goregular.TTF); err == nil {
			l.font, l.source = f, Go
			return
		}
	}
	l.source = Basic
}

func parseFile(path string) (*truetype.Font, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, false
	}
	return f, true
}

// lookup expands a font name into the paths to try: the name itself, then
// the name inside each system font directory. Absolute paths are tried
// as-is only.
func lookup(name string) []string {
	if filepath.IsAbs(name) {
		return []string{name}
	}
	out := []string{name}
	for _, dir := range systemDirs() {
		out = append(out, filepath.Join(dir, name))
	}
	return out
}

func systemDirs() []string {
	home, _ := os.UserHomeDir()
	switch runtime.GOOS {
	case "windows":
		windir := os.Getenv("WINDIR")
		if windir == "" {
			windir = `C:\Windows`
		}
		return []string{filepath.Join(windir, "Fonts")}
	case "darwin":
		dirs := []string{"/Library/Fonts", "/System/Library/Fonts", "/System/Library/Fonts/Supplemental"}
		if home != "" {
			dirs = append(dirs, filepath.Join(home, "Library", "Fonts"))
		}
		return dirs
	default:
		dirs := []string{
			"/usr/share/fonts/truetype/msttcorefonts",
			"/usr/share/fonts/truetype",
			"/usr/share/fonts/TTF",
			"/usr/share/fonts",
		}
		if home != "" {
			dirs = append(dirs, filepath.Join(home, ".fonts"), filepath.Join(home, ".local", "share", "fonts"))
		}
		return dirs
	}
}
