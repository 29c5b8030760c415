package codeshot

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultConfig(t *testing.T) {
	want := Config{
		LinePad:        2,
		CodePad:        25,
		LineNumber:     true,
		LineOffset:     1,
		RoundCorner:    true,
		WindowControls: true,
		TabWidth:       4,
	}
	if diff := cmp.Diff(want, DefaultConfig()); diff != "" {
		t.Errorf("DefaultConfig() mismatch (-want +got):\n%s", diff)
	}
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*Config)
		field string
	}{
		{"negative line pad", func(c *Config) { c.LinePad = -1 }, "LinePad"},
		{"negative code pad", func(c *Config) { c.CodePad = -1 }, "CodePad"},
		{"negative line offset", func(c *Config) { c.LineOffset = -3 }, "LineOffset"},
		{"negative tab width", func(c *Config) { c.TabWidth = -4 }, "TabWidth"},
		{"negative blur", func(c *Config) { c.Shadow = &ShadowConfig{BlurRadius: -1} }, "Shadow.BlurRadius"},
		{"negative shadow pad", func(c *Config) { c.Shadow = &ShadowConfig{PadVert: -1} }, "Shadow.PadVert"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.edit(&cfg)

			err := cfg.Validate()
			var cerr *ConfigError
			if !errors.As(err, &cerr) {
				t.Fatalf("Validate() = %v, want *ConfigError", err)
			}
			if cerr.Field != tt.field {
				t.Errorf("Field = %q, want %q", cerr.Field, tt.field)
			}

			if _, err := NewRenderer(cfg); !errors.As(err, &cerr) {
				t.Errorf("NewRenderer() = %v, want *ConfigError", err)
			}
		})
	}
}

func TestDefaultShadowValid(t *testing.T) {
	s := DefaultShadow()
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	if s.BlurRadius != 50 || s.PadHoriz != 80 || s.PadVert != 100 {
		t.Errorf("DefaultShadow() = %+v", s)
	}
}
