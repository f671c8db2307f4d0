package paths

import (
	"os"
	"path/filepath"
	"strconv"
)

const (
	DefaultOutputDir = "public"
	ConfigFileName   = "previews-config.json"
	BannerFileName   = "og-image.png"
	LogoFileName     = "logo.png"
	DirPerm          = 0755
	FilePerm         = 0644
)

// BannerPath returns the og-image path inside dir.
func BannerPath(dir string) string {
	return filepath.Join(dir, BannerFileName)
}

// LogoPath returns the logo path inside dir.
func LogoPath(dir string) string {
	return filepath.Join(dir, LogoFileName)
}

// VariantName returns the file name of a resized logo, e.g. "logo-192.png".
func VariantName(size int) string {
	return "logo-" + strconv.Itoa(size) + ".png"
}

// AtomicWrite writes data to path via a temporary file + rename to avoid
// partial writes. The parent directory is created if needed.
func AtomicWrite(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, FilePerm); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
