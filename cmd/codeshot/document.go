package main

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/codeshot"
)

// tokenDocument is the YAML form of a highlighted document:
//
//	theme:
//	  foreground: "#f8f8f2"
//	  background: "#282a36"
//	lines:
//	  - - {text: "func", color: "#ff79c6", bold: true}
//	    - {text: " main() {"}
//	  - []
//
// A span without a color takes the theme foreground. The theme block is
// optional and overrides the configured theme field by field.
type tokenDocument struct {
	Theme themeConfig   `yaml:"theme"`
	Lines [][]tokenSpan `yaml:"lines"`
}

type tokenSpan struct {
	Text   string `yaml:"text"`
	Color  string `yaml:"color"`
	Bold   bool   `yaml:"bold"`
	Italic bool   `yaml:"italic"`
}

func decodeTokenDocument(data []byte, theme codeshot.Theme) (codeshot.Document, codeshot.Theme, error) {
	var td tokenDocument
	if err := yaml.Unmarshal(data, &td); err != nil {
		return nil, theme, fmt.Errorf("parse token document: %w", err)
	}

	var err error
	if td.Theme.Foreground != "" {
		if theme.Foreground, err = codeshot.ParseHex(td.Theme.Foreground); err != nil {
			return nil, theme, fmt.Errorf("document theme foreground: %w", err)
		}
	}
	if td.Theme.Background != "" {
		if theme.Background, err = codeshot.ParseHex(td.Theme.Background); err != nil {
			return nil, theme, fmt.Errorf("document theme background: %w", err)
		}
	}

	doc := make(codeshot.Document, len(td.Lines))
	for i, spans := range td.Lines {
		line := make(codeshot.Line, 0, len(spans))
		for j, ts := range spans {
			col := theme.Foreground
			if ts.Color != "" {
				if col, err = codeshot.ParseHex(ts.Color); err != nil {
					return nil, theme, fmt.Errorf("line %d span %d: %w", i+1, j+1, err)
				}
			}
			line = append(line, codeshot.Span{
				Foreground: col,
				Style:      codeshot.MapStyle(ts.Bold, ts.Italic),
				Text:       ts.Text,
			})
		}
		doc[i] = line
	}
	return doc, theme, nil
}

// plainDocument renders src as unhighlighted text in the theme foreground.
// A trailing newline does not produce an empty last line.
func plainDocument(src string, theme codeshot.Theme) codeshot.Document {
	src = strings.TrimSuffix(strings.ReplaceAll(src, "\r\n", "\n"), "\n")
	if src == "" {
		return codeshot.Document{}
	}

	lines := strings.Split(src, "\n")
	doc := make(codeshot.Document, len(lines))
	for i, l := range lines {
		doc[i] = codeshot.Line{{Foreground: theme.Foreground, Style: codeshot.Regular, Text: l}}
	}
	return doc
}
