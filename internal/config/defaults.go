package config

import (
	_ "embed"
)

//go:embed defaults/demo.yaml
var defaultDemoYAML []byte

// DefaultDemoConfig returns the default demo configuration.
func DefaultDemoConfig() DemoConfig {
	return DemoConfig{
		Grid: GridConfig{
			Width:  32,
			Height: 32,
		},
		TickRate: 60,
		Seed:     0,
		Effects:  []string{"flower"},
		Window: WindowConfig{
			Title: "tiledemo",
			Scale: 2,
		},
		Render: RenderConfig{
			Workers: 1,
		},
		Fire: FireConfig{
			Green: 32,
			Glyph: 0,
		},
		Rainbow: RainbowConfig{
			Speed:      0.004,
			GlyphFirst: 32,
			GlyphCount: 64,
			GlyphStep:  8,
		},
	}
}
