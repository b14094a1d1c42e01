package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const fileName = "rover.yaml"

// Load loads the rover configuration, applies environment overrides and validates it.
// Search order: customPath -> ~/.rover/configs/rover.yaml -> ./configs/rover.yaml -> embedded default
func Load(customPath string) (RoverConfig, error) {
	cfg, err := loadFile(customPath)
	if err != nil {
		return cfg, err
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("config: parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%w (source: %s)", err, cfg.Source)
	}
	return cfg, nil
}

// loadFile walks the search order and returns the first file that parses.
func loadFile(customPath string) (RoverConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := readFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(fileName); userCfgPath != "" {
		if cfg, err := readFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := readFile(filepath.Join("configs", fileName)); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := DefaultRoverConfig()
	if err := yaml.Unmarshal(defaultRoverYAML, &cfg); err != nil {
		return DefaultRoverConfig(), nil // Fallback to hardcoded if embed fails
	}
	cfg.Source = "embedded default"
	return cfg, nil
}

// readFile parses a YAML file over the built-in defaults, so omitted keys keep their default values.
func readFile(path string) (RoverConfig, error) {
	cfg := DefaultRoverConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	cfg.Source = path
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rover", "configs", filename)
}

// Marshal renders the configuration as YAML.
func (c RoverConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}
