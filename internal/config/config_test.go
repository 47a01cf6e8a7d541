package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultDemoConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestEmbeddedMatchesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := DefaultDemoConfig()
	if cfg.Grid != def.Grid || cfg.TickRate != def.TickRate || cfg.Fire != def.Fire || cfg.Rainbow != def.Rainbow {
		t.Errorf("embedded config %+v differs from defaults %+v", cfg, def)
	}
}

func TestLoadCustomPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	data := "tick_rate: 30\neffects: [gradient, fire]\nfire:\n  green: 64\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TickRate != 30 {
		t.Errorf("TickRate = %d, want 30", cfg.TickRate)
	}
	if got := strings.Join(cfg.Effects, ","); got != "gradient,fire" {
		t.Errorf("Effects = %s, want gradient,fire", got)
	}
	if cfg.Fire.Green != 64 {
		t.Errorf("Fire.Green = %d, want 64", cfg.Fire.Green)
	}
	// Untouched sections keep their defaults.
	if cfg.Grid.Width != 32 || cfg.Window.Scale != 2 {
		t.Errorf("defaults lost: grid %+v window %+v", cfg.Grid, cfg.Window)
	}
}

func TestLoadCustomMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DemoConfig)
	}{
		{"zero width", func(c *DemoConfig) { c.Grid.Width = 0 }},
		{"negative height", func(c *DemoConfig) { c.Grid.Height = -1 }},
		{"zero tick rate", func(c *DemoConfig) { c.TickRate = 0 }},
		{"no effects", func(c *DemoConfig) { c.Effects = nil }},
		{"zero scale", func(c *DemoConfig) { c.Window.Scale = 0 }},
		{"zero glyph step", func(c *DemoConfig) { c.Rainbow.GlyphStep = 0 }},
		{"negative fire glyph", func(c *DemoConfig) { c.Fire.Glyph = -1 }},
		{"negative rainbow glyph", func(c *DemoConfig) { c.Rainbow.GlyphFirst = -3 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultDemoConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
