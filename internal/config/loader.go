package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the demo configuration.
// Search order: customPath -> ~/.tiledemo/demo.yaml -> ./configs/demo.yaml -> embedded default
// Files are decoded over the defaults, so partial files only override what they name.
func Load(customPath string) (DemoConfig, error) {
	cfg := DefaultDemoConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("demo.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, cfg.Validate()
			}
			cfg = DefaultDemoConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/demo.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, cfg.Validate()
		}
		cfg = DefaultDemoConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultDemoYAML, &cfg); err != nil {
		return DefaultDemoConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// userConfigPath returns the path to a file in ~/.tiledemo/, or "" if the
// home directory cannot be determined.
func userConfigPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tiledemo", name)
}
