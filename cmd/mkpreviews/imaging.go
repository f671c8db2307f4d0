//go:build !noimaging

package main

import (
	"fmt"
	"io"

	"github.com/inflynced/previews/internal/config"
	"github.com/inflynced/previews/internal/fonts"
	"github.com/inflynced/previews/internal/preview"
)

const imagingAvailable = true

func renderStrategy() strategy {
	return func(cfg config.Config, out io.Writer) error {
		faces := fonts.New(cfg.FontPaths, cfg.FallbackFont)
		fmt.Fprintln(out, dim("Font: "+faces.Source()))
		return preview.Render(cfg, faces, func(name string) {
			fmt.Fprintf(out, "Created %s\n", bold(name))
		})
	}
}
