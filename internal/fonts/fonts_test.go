package fonts

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

func TestMissingFontFallsBackToBasic(t *testing.T) {
	l := New([]string{filepath.Join(t.TempDir(), "nope.ttf")}, Basic)
	if got := l.Source(); got != Basic {
		t.Errorf("Source() = %q, want %q", got, Basic)
	}
	if l.Face(72) != basicfont.Face7x13 {
		t.Error("expected basicfont.Face7x13")
	}
}

func TestMissingFontFallsBackToGo(t *testing.T) {
	l := New(nil, Go)
	if got := l.Source(); got != Go {
		t.Errorf("Source() = %q, want %q", got, Go)
	}
	small := l.Face(12).Metrics().Height
	large := l.Face(72).Metrics().Height
	if large <= small {
		t.Errorf("72px height %v not larger than 12px height %v", large, small)
	}
}

func TestUnparsableFontIsSkipped(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.ttf")
	writeFile(t, bad, []byte("not a font"))

	l := New([]string{bad}, Basic)
	if got := l.Source(); got != Basic {
		t.Errorf("Source() = %q, want %q", got, Basic)
	}
}

func TestExplicitFontFile(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.ttf")
	good := filepath.Join(dir, "good.ttf")
	writeFile(t, bad, []byte("junk"))
	writeFile(t, good, goregular.TTF)

	l := New([]string{bad, good}, Basic)
	if got := l.Source(); got != good {
		t.Errorf("Source() = %q, want %q", got, good)
	}
	if l.Face(36) == basicfont.Face7x13 {
		t.Error("expected a TrueType face")
	}
}

func TestLookup(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "arial.ttf")
	if got := lookup(abs); len(got) != 1 || got[0] != abs {
		t.Errorf("lookup(%q) = %v, want [%q]", abs, got, abs)
	}
	got := lookup("arial.ttf")
	if len(got) < 2 || got[0] != "arial.ttf" {
		t.Errorf("lookup(arial.ttf) = %v", got)
	}
	for _, p := range got[1:] {
		if filepath.Base(p) != "arial.ttf" {
			t.Errorf("candidate %q does not end in arial.ttf", p)
		}
	}
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("WriteFile(%s): %v", path, err)
	}
}
