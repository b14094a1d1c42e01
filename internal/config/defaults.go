package config

import (
	_ "embed"
)

//go:embed defaults/rover.yaml
var defaultRoverYAML []byte

// DefaultRoverConfig returns the built-in configuration.
func DefaultRoverConfig() RoverConfig {
	return RoverConfig{
		Grid: GridConfig{
			Size: 10,
		},
		Start: StartConfig{
			X: 0,
			Y: 0,
		},
		Log: LogConfig{
			Level: "info",
		},
		UI: UIConfig{
			HistorySize: 8,
			ShowPath:    true,
		},
		Source: "built-in defaults",
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRoverYAML
}
