// Package placeholder holds the fixed PNG stand-ins written when the binary
// is built without imaging support.
package placeholder

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/inflynced/previews/internal/paths"
)

// Banner is the og-image stand-in. Its IHDR declares 1200×630 RGBA but the
// image data and the IHDR CRC do not match; the bytes are kept verbatim.
var Banner = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x04, 0xb0, 0x00, 0x00, 0x02, 0x76,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x8d, 0x0b, 0x9a, 0x9c, 0x00, 0x00, 0x00,
	0x04, 0x73, 0x42, 0x49, 0x54, 0x08, 0x08, 0x08, 0x08, 0x7c, 0x08, 0x64,
	0x88, 0x00, 0x00, 0x00, 0x19, 0x74, 0x45, 0x58, 0x74, 0x53, 0x6f, 0x66,
	0x74, 0x77, 0x61, 0x72, 0x65, 0x00, 0x77, 0x77, 0x77, 0x2e, 0x69, 0x6e,
	0x6b, 0x73, 0x63, 0x61, 0x70, 0x65, 0x2e, 0x6f, 0x72, 0x67, 0x9b, 0xee,
	0x3c, 0x1a, 0x00, 0x00, 0x00, 0x0b, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c,
	0xed, 0xc1, 0x01, 0x00, 0x00, 0x00, 0x80, 0x90, 0xfe, 0xaf, 0xee, 0x08,
	0x0a, 0x00, 0x00, 0x00, 0x00, 0x49, 0x45, 0x4e, 0x44, 0xae, 0x42, 0x60,
	0x82,
}

// Logo is the logo stand-in. Its IHDR declares 512×512 RGBA.
var Logo = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00, 0x02, 0x00,
	0x08, 0x06, 0x00, 0x00, 0x00, 0xf4, 0x78, 0xd4, 0xfa, 0x00, 0x00, 0x00,
	0x04, 0x73, 0x42, 0x49, 0x54, 0x08, 0x08, 0x08, 0x08, 0x7c, 0x08, 0x64,
	0x88, 0x00, 0x00, 0x00, 0x19, 0x74, 0x45, 0x58, 0x74, 0x53, 0x6f, 0x66,
	0x74, 0x77, 0x61, 0x72, 0x65, 0x00, 0x77, 0x77, 0x77, 0x2e, 0x69, 0x6e,
	0x6b, 0x73, 0x63, 0x61, 0x70, 0x65, 0x2e, 0x6f, 0x72, 0x67, 0x9b, 0xee,
	0x3c, 0x1a, 0x00, 0x00, 0x00, 0x0b, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c,
	0xed, 0xc1, 0x01, 0x00, 0x00, 0x00, 0x80, 0x90, 0xfe, 0xaf, 0xee, 0x08,
	0x0a, 0x00, 0x00, 0x00, 0x00, 0x49, 0x45, 0x4e, 0x44, 0xae, 0x42, 0x60,
	0x82,
}

var signature = []byte("\x89PNG\r\n\x1a\n")

// Write stores both placeholders in dir under their regular file names.
func Write(dir string) error {
	if err := paths.AtomicWrite(paths.BannerPath(dir), Banner); err != nil {
		return fmt.Errorf("write %s: %w", paths.BannerFileName, err)
	}
	if err := paths.AtomicWrite(paths.LogoPath(dir), Logo); err != nil {
		return fmt.Errorf("write %s: %w", paths.LogoFileName, err)
	}
	return nil
}

// Dimensions returns the width and height declared by the IHDR chunk of b.
// The chunk CRC is not checked, since Banner carries a stale one.
func Dimensions(b []byte) (width, height int, err error) {
	// signature(8) + length(4) + type(4) + width(4) + height(4)
	if len(b) < 24 {
		return 0, 0, errors.New("png too short")
	}
	if !bytes.Equal(b[:8], signature) {
		return 0, 0, errors.New("not a png")
	}
	if string(b[12:16]) != "IHDR" {
		return 0, 0, fmt.Errorf("first chunk is %q, want IHDR", b[12:16])
	}
	w := binary.BigEndian.Uint32(b[16:20])
	h := binary.BigEndian.Uint32(b[20:24])
	return int(w), int(h), nil
}
