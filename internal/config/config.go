// Package config provides YAML-based configuration loading for the rover,
// with environment variable overrides applied on top of the file.
package config

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// RoverConfig contains all configuration for a rover session.
type RoverConfig struct {
	Grid  GridConfig  `yaml:"grid"`
	Start StartConfig `yaml:"start"`
	Log   LogConfig   `yaml:"log"`
	UI    UIConfig    `yaml:"ui"`

	// Source records where the configuration was read from.
	Source string `yaml:"-"`
}

// GridConfig defines the square grid the rover moves on.
type GridConfig struct {
	Size int `yaml:"size" env:"ROVER_GRID_SIZE"` // Edge length; valid coordinates are [0, size-1]
}

// StartConfig defines the rover's starting cell.
type StartConfig struct {
	X int `yaml:"x" env:"ROVER_START_X"`
	Y int `yaml:"y" env:"ROVER_START_Y"`
}

// LogConfig defines logging behavior.
type LogConfig struct {
	Level string `yaml:"level" env:"ROVER_LOG_LEVEL"` // debug, info, warn, error
}

// UIConfig defines terminal UI parameters.
type UIConfig struct {
	HistorySize int  `yaml:"history_size" env:"ROVER_UI_HISTORY_SIZE"` // Operations kept in the history pane
	ShowPath    bool `yaml:"show_path" env:"ROVER_UI_SHOW_PATH"`       // Draw the last planned path on the grid
}

// Validate checks that the configuration describes a usable session.
func (c RoverConfig) Validate() error {
	if c.Grid.Size < 1 {
		return fmt.Errorf("config: grid.size must be at least 1, got %d", c.Grid.Size)
	}
	if c.Start.X < 0 || c.Start.X >= c.Grid.Size || c.Start.Y < 0 || c.Start.Y >= c.Grid.Size {
		return fmt.Errorf("config: start (%d, %d) must be within [0, %d]", c.Start.X, c.Start.Y, c.Grid.Size-1)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	if c.UI.HistorySize < 0 {
		return fmt.Errorf("config: ui.history_size must not be negative, got %d", c.UI.HistorySize)
	}
	return nil
}
