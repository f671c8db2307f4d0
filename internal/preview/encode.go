package preview

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"

	"golang.org/x/image/draw"

	"github.com/inflynced/previews/internal/config"
	"github.com/inflynced/previews/internal/paths"
)

// Encode writes img as PNG. Fully opaque images are stored as 8-bit RGB
// without an alpha channel.
func Encode(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// Save encodes img and writes it to path atomically.
func Save(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := Encode(&buf, img); err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	if err := paths.AtomicWrite(path, buf.Bytes()); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

// Resize scales img into a size×size square.
func Resize(img image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// Render builds and saves the banner, the logo and any configured logo
// variants into cfg.OutputDir. created is called with each file name once
// it is on disk.
func Render(cfg config.Config, faces FaceSource, created func(name string)) error {
	if created == nil {
		created = func(string) {}
	}

	banner, err := BuildBanner(cfg.Banner, faces)
	if err != nil {
		return err
	}
	if err := Save(paths.BannerPath(cfg.OutputDir), banner); err != nil {
		return err
	}
	created(paths.BannerFileName)

	logo, err := BuildLogo(cfg.Logo, faces)
	if err != nil {
		return err
	}
	if err := Save(paths.LogoPath(cfg.OutputDir), logo); err != nil {
		return err
	}
	created(paths.LogoFileName)

	for _, size := range cfg.Logo.Variants {
		name := paths.VariantName(size)
		if err := Save(filepath.Join(cfg.OutputDir, name), Resize(logo, size)); err != nil {
			return err
		}
		created(name)
	}
	return nil
}
