// Command codeshot renders a highlighted source document to a PNG screenshot.
//
// Usage:
//
//	codeshot -input tokens.yaml -o shot.png
//	codeshot -input main.go -window-title main.go -highlight-lines "3-5" -o shot.png
//
// Inputs ending in .yaml or .yml are token documents of styled spans;
// anything else is rendered as plain text in the theme foreground color.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/gogpu/codeshot"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "codeshot: %v\n", err)
		os.Exit(1)
	}
}

// run parses args, renders the input and writes the PNG.
func run(args []string, stdin io.Reader, stderr io.Writer) error {
	fs := flag.NewFlagSet("codeshot", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configPath = fs.String("config", "", "YAML config file")
		input      = fs.String("input", "-", "input file, '-' for stdin")
		output     = fs.String("o", "codeshot.png", "output PNG file")
	)
	ov := bindOverrides(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	fc := defaultFileConfig()
	if *configPath != "" {
		loaded, err := loadFileConfig(*configPath)
		if err != nil {
			return err
		}
		fc = loaded
	}
	ov.apply(fs, &fc)

	logger, closeLog, err := newLogger(fc.Log, stderr)
	if err != nil {
		return err
	}
	defer closeLog()
	codeshot.SetLogger(logger)

	cfg, err := fc.toConfig()
	if err != nil {
		return err
	}

	doc, theme, err := readInput(*input, stdin, fc)
	if err != nil {
		return err
	}

	r, err := codeshot.NewRenderer(cfg)
	if err != nil {
		return err
	}
	img := r.Render(doc, theme)

	if err := writePNG(*output, img); err != nil {
		return err
	}
	logger.Info("wrote screenshot", "path", *output, "width", img.Width(), "height", img.Height())
	return nil
}

// readInput loads the document from path, or from stdin when path is "-".
func readInput(path string, stdin io.Reader, fc fileConfig) (codeshot.Document, codeshot.Theme, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path) //nolint:gosec // input path is user-provided intentionally
	}
	if err != nil {
		return nil, codeshot.Theme{}, fmt.Errorf("read input: %w", err)
	}

	theme, err := fc.theme()
	if err != nil {
		return nil, codeshot.Theme{}, err
	}

	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return decodeTokenDocument(data, theme)
	default:
		return plainDocument(string(data), theme), theme, nil
	}
}

// writePNG encodes img to path, creating parent directories.
func writePNG(path string, img *codeshot.Canvas) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	f, err := os.Create(path) //nolint:gosec // output path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := png.Encode(f, img.NRGBA()); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}
