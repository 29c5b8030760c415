package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	_ "image/jpeg" // backdrop images
	_ "image/png"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/codeshot"
	"github.com/gogpu/codeshot/text"
)

// fileConfig is the YAML configuration file. Keys absent from the file
// keep their defaults.
type fileConfig struct {
	LinePad        int    `yaml:"line_pad"`
	CodePad        int    `yaml:"code_pad"`
	LineNumber     bool   `yaml:"line_number"`
	LineOffset     int    `yaml:"line_offset"`
	RoundCorner    bool   `yaml:"round_corner"`
	WindowControls bool   `yaml:"window_controls"`
	WindowTitle    string `yaml:"window_title"`
	HighlightLines string `yaml:"highlight_lines"`
	TabWidth       int    `yaml:"tab_width"`
	Font           string `yaml:"font"`
	Shaper         string `yaml:"shaper"`

	Theme  themeConfig  `yaml:"theme"`
	Shadow shadowConfig `yaml:"shadow"`
	Log    logConfig    `yaml:"log"`
}

type themeConfig struct {
	Foreground string `yaml:"foreground"`
	Background string `yaml:"background"`
}

type shadowConfig struct {
	Enabled         bool    `yaml:"enabled"`
	Background      string  `yaml:"background"`
	BackgroundImage string  `yaml:"background_image"`
	Color           string  `yaml:"color"`
	BlurRadius      float64 `yaml:"blur_radius"`
	PadHoriz        int     `yaml:"pad_horiz"`
	PadVert         int     `yaml:"pad_vert"`
	OffsetX         int     `yaml:"offset_x"`
	OffsetY         int     `yaml:"offset_y"`
}

type logConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// defaultFileConfig mirrors codeshot.DefaultConfig and codeshot.DefaultShadow.
func defaultFileConfig() fileConfig {
	def := codeshot.DefaultConfig()
	return fileConfig{
		LinePad:        def.LinePad,
		CodePad:        def.CodePad,
		LineNumber:     def.LineNumber,
		LineOffset:     def.LineOffset,
		RoundCorner:    def.RoundCorner,
		WindowControls: def.WindowControls,
		TabWidth:       def.TabWidth,
		Shaper:         "builtin",
		Theme: themeConfig{
			Foreground: "#f8f8f2",
			Background: "#282a36",
		},
		Shadow: shadowConfig{
			Background: "#abb8c3",
			Color:      "#707070",
			BlurRadius: 50,
			PadHoriz:   80,
			PadVert:    100,
		},
		Log: logConfig{Level: "warn"},
	}
}

// loadFileConfig reads a YAML config file on top of the defaults.
func loadFileConfig(path string) (fileConfig, error) {
	fc := defaultFileConfig()
	data, err := os.ReadFile(path) //nolint:gosec // config path is user-provided intentionally
	if err != nil {
		return fc, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("parse config %s: %w", path, err)
	}
	return fc, nil
}

// toConfig resolves fonts, shaper, highlight ranges and shadow into a
// renderer configuration.
func (fc fileConfig) toConfig() (codeshot.Config, error) {
	cfg := codeshot.DefaultConfig()
	cfg.LinePad = fc.LinePad
	cfg.CodePad = fc.CodePad
	cfg.LineNumber = fc.LineNumber
	cfg.LineOffset = fc.LineOffset
	cfg.RoundCorner = fc.RoundCorner
	cfg.WindowControls = fc.WindowControls
	cfg.WindowTitle = fc.WindowTitle
	cfg.TabWidth = fc.TabWidth

	lines, err := parseLineRange(fc.HighlightLines)
	if err != nil {
		return cfg, err
	}
	cfg.HighlightLines = lines

	if fc.Font != "" {
		fonts, err := parseFontList(fc.Font)
		if err != nil {
			return cfg, err
		}
		cfg.Fonts = fonts
	}

	switch strings.ToLower(fc.Shaper) {
	case "", "builtin":
	case "gotext", "harfbuzz":
		cfg.Shaper = text.NewGoTextShaper()
	default:
		return cfg, fmt.Errorf("unknown shaper %q (want builtin or gotext)", fc.Shaper)
	}

	if fc.Shadow.Enabled {
		shadow, err := fc.Shadow.toShadow()
		if err != nil {
			return cfg, err
		}
		cfg.Shadow = shadow
	}
	return cfg, nil
}

func (sc shadowConfig) toShadow() (*codeshot.ShadowConfig, error) {
	s := codeshot.DefaultShadow()
	var err error
	if sc.Background != "" {
		if s.Background.Color, err = codeshot.ParseHex(sc.Background); err != nil {
			return nil, fmt.Errorf("shadow background: %w", err)
		}
	}
	if sc.Color != "" {
		if s.ShadowColor, err = codeshot.ParseHex(sc.Color); err != nil {
			return nil, fmt.Errorf("shadow color: %w", err)
		}
	}
	if sc.BackgroundImage != "" {
		img, err := loadImage(sc.BackgroundImage)
		if err != nil {
			return nil, err
		}
		s.Background.Image = img
	}
	s.BlurRadius = sc.BlurRadius
	s.PadHoriz = sc.PadHoriz
	s.PadVert = sc.PadVert
	s.OffsetX = sc.OffsetX
	s.OffsetY = sc.OffsetY
	return s, nil
}

func (fc fileConfig) theme() (codeshot.Theme, error) {
	fg, err := codeshot.ParseHex(fc.Theme.Foreground)
	if err != nil {
		return codeshot.Theme{}, fmt.Errorf("theme foreground: %w", err)
	}
	bg, err := codeshot.ParseHex(fc.Theme.Background)
	if err != nil {
		return codeshot.Theme{}, fmt.Errorf("theme background: %w", err)
	}
	return codeshot.Theme{Foreground: fg, Background: bg}, nil
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path) //nolint:gosec // image path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("open background image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode background image %s: %w", path, err)
	}
	return img, nil
}

var errBadRange = errors.New("invalid line range")

// parseLineRange parses "1-3;5" into [1 2 3 5]. Entries are separated by
// ';' and are either a single line or an inclusive a-b range.
func parseLineRange(s string) ([]int, error) {
	var lines []int
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		lo, hi, isRange := strings.Cut(part, "-")
		a, err := strconv.Atoi(strings.TrimSpace(lo))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", errBadRange, part)
		}
		b := a
		if isRange {
			if b, err = strconv.Atoi(strings.TrimSpace(hi)); err != nil {
				return nil, fmt.Errorf("%w: %q", errBadRange, part)
			}
		}
		if a < 1 || b < a {
			return nil, fmt.Errorf("%w: %q", errBadRange, part)
		}
		for n := a; n <= b; n++ {
			lines = append(lines, n)
		}
	}
	return lines, nil
}

// fontEntry is one family of a font list: up to four comma-separated
// paths (regular, italic, bold, bold italic) and a pixel size.
type fontEntry struct {
	paths [4]string
	size  float64
}

// parseFontEntries parses "mono.ttf=26;cjk.ttf=26". The first entry is the
// primary family, the second the secondary family for non-ASCII runs.
func parseFontEntries(s string) ([]fontEntry, error) {
	var entries []fontEntry
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		paths, sizeStr, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("font %q: missing =size", part)
		}
		size, err := strconv.ParseFloat(strings.TrimSpace(sizeStr), 64)
		if err != nil || size <= 0 {
			return nil, fmt.Errorf("font %q: invalid size %q", part, sizeStr)
		}

		var e fontEntry
		e.size = size
		list := strings.Split(paths, ",")
		if len(list) > len(e.paths) {
			return nil, fmt.Errorf("font %q: at most %d style paths", part, len(e.paths))
		}
		for i, p := range list {
			e.paths[i] = strings.TrimSpace(p)
		}
		if e.paths[0] == "" {
			return nil, fmt.Errorf("font %q: missing regular path", part)
		}
		entries = append(entries, e)
	}
	switch {
	case len(entries) == 0:
		return nil, errors.New("empty font list")
	case len(entries) > 2:
		return nil, fmt.Errorf("font list has %d families, at most 2 supported", len(entries))
	}
	return entries, nil
}

// parseFontList loads the families named by a font list into a FontSet.
func parseFontList(s string) (*text.FontSet, error) {
	entries, err := parseFontEntries(s)
	if err != nil {
		return nil, err
	}

	fams := make([]*text.Family, len(entries))
	for i, e := range entries {
		if fams[i], err = text.LoadFamily(e.paths[0], e.paths[1], e.paths[2], e.paths[3]); err != nil {
			return nil, fmt.Errorf("load font %s: %w", e.paths[0], err)
		}
	}
	if len(fams) == 1 {
		return text.NewFontSet(fams[0], entries[0].size, nil, 0)
	}
	return text.NewFontSet(fams[0], entries[0].size, fams[1], entries[1].size)
}

// overrides holds command-line flags that replace config file values.
// Only flags set explicitly on the command line are applied.
type overrides struct {
	linePad, codePad, lineOffset, tabWidth  int
	noLineNumber, noRoundCorner, noControls bool
	title, highlight, font, shaper          string
	fg, bg                                  string

	shadow                  bool
	shadowBlur              float64
	padHoriz, padVert       int
	shadowColor, background string
	backgroundImage         string
	offsetX, offsetY        int
	logLevel, logFile       string
}

func bindOverrides(fs *flag.FlagSet) *overrides {
	o := &overrides{}
	def := defaultFileConfig()
	fs.IntVar(&o.linePad, "line-pad", def.LinePad, "gap between lines")
	fs.IntVar(&o.codePad, "code-pad", def.CodePad, "padding around the code")
	fs.IntVar(&o.lineOffset, "line-offset", def.LineOffset, "number of the first line")
	fs.IntVar(&o.tabWidth, "tab-width", def.TabWidth, "spaces per tab")
	fs.BoolVar(&o.noLineNumber, "no-line-number", false, "hide line numbers")
	fs.BoolVar(&o.noRoundCorner, "no-round-corner", false, "keep square corners")
	fs.BoolVar(&o.noControls, "no-window-controls", false, "hide window controls")
	fs.StringVar(&o.title, "window-title", "", "title shown in the title bar")
	fs.StringVar(&o.highlight, "highlight-lines", "", `lines to highlight, e.g. "1-3;5"`)
	fs.StringVar(&o.font, "font", "", `font list, e.g. "mono.ttf=26;cjk.ttf=26"`)
	fs.StringVar(&o.shaper, "shaper", def.Shaper, "text shaper: builtin or gotext")
	fs.StringVar(&o.fg, "theme-foreground", def.Theme.Foreground, "plain text color")
	fs.StringVar(&o.bg, "theme-background", def.Theme.Background, "code background color")
	fs.BoolVar(&o.shadow, "shadow", false, "add a drop shadow")
	fs.Float64Var(&o.shadowBlur, "shadow-blur", def.Shadow.BlurRadius, "shadow blur radius")
	fs.IntVar(&o.padHoriz, "pad-horiz", def.Shadow.PadHoriz, "horizontal shadow padding")
	fs.IntVar(&o.padVert, "pad-vert", def.Shadow.PadVert, "vertical shadow padding")
	fs.StringVar(&o.shadowColor, "shadow-color", def.Shadow.Color, "shadow color")
	fs.StringVar(&o.background, "background", def.Shadow.Background, "shadow backdrop color")
	fs.StringVar(&o.backgroundImage, "background-image", "", "shadow backdrop image")
	fs.IntVar(&o.offsetX, "shadow-offset-x", 0, "shadow x offset")
	fs.IntVar(&o.offsetY, "shadow-offset-y", 0, "shadow y offset")
	fs.StringVar(&o.logLevel, "log-level", def.Log.Level, "debug, info, warn or error")
	fs.StringVar(&o.logFile, "log-file", "", "rotate logs into this file instead of stderr")
	return o
}

// apply copies the explicitly set flags into fc.
func (o *overrides) apply(fs *flag.FlagSet, fc *fileConfig) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "line-pad":
			fc.LinePad = o.linePad
		case "code-pad":
			fc.CodePad = o.codePad
		case "line-offset":
			fc.LineOffset = o.lineOffset
		case "tab-width":
			fc.TabWidth = o.tabWidth
		case "no-line-number":
			fc.LineNumber = !o.noLineNumber
		case "no-round-corner":
			fc.RoundCorner = !o.noRoundCorner
		case "no-window-controls":
			fc.WindowControls = !o.noControls
		case "window-title":
			fc.WindowTitle = o.title
		case "highlight-lines":
			fc.HighlightLines = o.highlight
		case "font":
			fc.Font = o.font
		case "shaper":
			fc.Shaper = o.shaper
		case "theme-foreground":
			fc.Theme.Foreground = o.fg
		case "theme-background":
			fc.Theme.Background = o.bg
		case "shadow":
			fc.Shadow.Enabled = o.shadow
		case "shadow-blur":
			fc.Shadow.BlurRadius = o.shadowBlur
		case "pad-horiz":
			fc.Shadow.PadHoriz = o.padHoriz
		case "pad-vert":
			fc.Shadow.PadVert = o.padVert
		case "shadow-color":
			fc.Shadow.Color = o.shadowColor
		case "background":
			fc.Shadow.Background = o.background
		case "background-image":
			fc.Shadow.BackgroundImage = o.backgroundImage
		case "shadow-offset-x":
			fc.Shadow.OffsetX = o.offsetX
		case "shadow-offset-y":
			fc.Shadow.OffsetY = o.offsetY
		case "log-level":
			fc.Log.Level = o.logLevel
		case "log-file":
			fc.Log.File = o.logFile
		}
	})
}
