// mkpreviews generates the og-image and logo PNGs for the miniapp.
// Usage: go run ./cmd/mkpreviews [--out <dir>] [--config <path>] [--placeholder]
package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/inflynced/previews/internal/config"
	"github.com/inflynced/previews/internal/paths"
	"github.com/inflynced/previews/internal/placeholder"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// strategy renders every output for cfg, reporting progress on out.
type strategy func(cfg config.Config, out io.Writer) error

type options struct {
	configPath  string
	outDir      string
	placeholder bool
	help        bool
	version     bool
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Run 'mkpreviews help' for usage.\n")
		os.Exit(1)
	}
	switch {
	case opts.help:
		printUsage()
		return
	case opts.version:
		printVersion()
		return
	}
	if err := run(opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseArgs(args []string) (options, error) {
	var opts options
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--config", "-c":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--config requires a file path")
			}
			opts.configPath = args[i+1]
			i++
		case "--out", "-o":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--out requires a directory")
			}
			opts.outDir = args[i+1]
			i++
		case "--placeholder":
			opts.placeholder = true
		case "help", "-h", "--help":
			opts.help = true
		case "version", "-V", "--version":
			opts.version = true
		default:
			return opts, fmt.Errorf("unknown argument %q", args[i])
		}
	}
	return opts, nil
}

// pick returns the render strategy, or nil when the placeholder bytes
// should be written instead.
func pick(render strategy, forcePlaceholder bool) strategy {
	if forcePlaceholder {
		return nil
	}
	return render
}

func run(opts options, out io.Writer) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.outDir != "" {
		cfg.OutputDir = opts.outDir
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	render := pick(renderStrategy(), opts.placeholder)
	if render == nil {
		return writePlaceholders(cfg.OutputDir, out)
	}

	fmt.Fprintln(out, "Generating preview images...")
	if err := render(cfg, out); err != nil {
		return err
	}
	fmt.Fprintln(out, green("Preview images created successfully!"))
	return nil
}

func writePlaceholders(dir string, out io.Writer) error {
	fmt.Fprintln(out, "Imaging not available, creating placeholder images...")
	if err := placeholder.Write(dir); err != nil {
		return err
	}
	bw, bh, _ := placeholder.Dimensions(placeholder.Banner)
	lw, lh, _ := placeholder.Dimensions(placeholder.Logo)
	fmt.Fprintf(out, "Created placeholder images %s\n",
		dim(fmt.Sprintf("(%s %d×%d, %s %d×%d)", paths.BannerFileName, bw, bh, paths.LogoFileName, lw, lh)))
	return nil
}

func printVersion() {
	fmt.Printf("mkpreviews %s (%s) %s/%s\n", version, buildDate, runtime.GOOS, runtime.GOARCH)
	if !imagingAvailable {
		fmt.Println("built without imaging: placeholder images only")
	}
}

func printUsage() {
	fmt.Printf("mkpreviews %s - Generate miniapp preview images\n", version)
	fmt.Println(`
Usage:
  mkpreviews [options]

Options:
  --out, -o <dir>        Output directory (default: config or "public")
  --config, -c <path>    Path to previews-config.json
  --placeholder          Write the fixed placeholder PNGs instead of rendering

Commands:
  help                   Show this help
  version                Show version

Outputs:
  og-image.png           1200×630 social-share banner (RGB)
  logo.png               512×512 app icon (RGBA)
  logo-<N>.png           Resized icon for each size in logo.variants`)
}
