package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/arcadelab/platkit/internal/sim"
)

// LoadParams loads kernel tuning.
// Search order: customPath -> ~/.platkit/params.yaml -> ./configs/params.yaml -> embedded default
//
// Every file is decoded on top of the defaults, so a partial file overrides
// only the keys it names — the same semantics as a replay document's params
// section.
func LoadParams(customPath string) (sim.Params, error) {
	cfg := DefaultParamsFile()

	// Custom path is explicit: failure to read or parse it is an error.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg.ToParams(), fmt.Errorf("failed to read params %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg.ToParams(), fmt.Errorf("failed to parse params %s: %w", customPath, err)
		}
		return cfg.ToParams(), nil
	}

	// Try user config directory
	if userPath := userParamsPath(); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg.ToParams(), nil
			}
			cfg = DefaultParamsFile()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "params.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg.ToParams(), nil
		}
		cfg = DefaultParamsFile()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultParamsYAML, &cfg); err != nil {
		return sim.DefaultParams(), nil // Fallback to hardcoded if embed fails
	}
	return cfg.ToParams(), nil
}

// userParamsPath returns the path to the user tuning file, or empty if home
// is unavailable.
func userParamsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".platkit", "params.yaml")
}
