// rover drives a single agent around a bounded grid from the terminal.
//
// Usage:
//
//	rover run <commands>     - Apply a command list such as N,N,E,E
//	rover goto <x> <y>       - Walk a straight line to a target cell
//	rover path <x> <y>       - Print the commands goto would use
//	rover play               - Drive the rover interactively
//	rover config             - Print the effective configuration
//
// Global flags:
//
//	--config <path>      - Config file (default search: ~/.rover/configs, ./configs)
//	--grid-size <n>      - Grid edge length (default: 10)
//	--start <x,y>        - Starting cell (default: 0,0)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/grid-rover/internal/config"
	"github.com/vovakirdan/grid-rover/internal/rover"
)

var (
	// Global flags
	flagConfig   string
	flagGridSize int
	flagStart    string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rover",
	Short: "Grid Rover - move an agent around a bounded grid",
	Long: `Grid Rover moves a single agent on a square grid.

Commands are compass letters separated by commas (N,E,S,W). Steps that
would leave the grid are clamped to the edge and cost no power.

Available commands:
  run      - Apply a command list
  goto     - Walk a straight line to a target cell
  path     - Show the commands goto would use
  play     - Interactive terminal mode
  config   - Print the effective configuration

Examples:
  rover run N,N,E,E
  rover run N E N E N
  rover goto 5 7 --show-path
  rover path 5 7 --start 2,2
  rover play --grid-size 15`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a rover config YAML")
	rootCmd.PersistentFlags().IntVar(&flagGridSize, "grid-size", rover.DefaultGridSize, "Grid edge length")
	rootCmd.PersistentFlags().StringVar(&flagStart, "start", "0,0", "Starting cell as x,y")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(gotoCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the config file and environment, then applies any
// global flags the user set explicitly.
func loadConfig(cmd *cobra.Command) (config.RoverConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("grid-size") {
		cfg.Grid.Size = flagGridSize
	}
	if flags.Changed("start") {
		x, y, err := parsePoint(flagStart)
		if err != nil {
			return cfg, fmt.Errorf("--start: %w", err)
		}
		cfg.Start = config.StartConfig{X: x, Y: y}
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger creates the command logger writing to the command's stderr.
func newLogger(cmd *cobra.Command, level string) *log.Logger {
	logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		ReportTimestamp: true,
		Prefix:          "rover",
	})
	if lvl, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}

// setup loads configuration and builds the logger and engine for a command.
func setup(cmd *cobra.Command) (*rover.Engine, *log.Logger, config.RoverConfig, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, cfg, err
	}

	logger := newLogger(cmd, cfg.Log.Level)
	logger.Debug("loaded config", "source", cfg.Source, "grid", cfg.Grid.Size, "start", fmt.Sprintf("%d,%d", cfg.Start.X, cfg.Start.Y))

	engine, err := rover.New(
		rover.WithGridSize(cfg.Grid.Size),
		rover.WithPosition(cfg.Start.X, cfg.Start.Y),
	)
	if err != nil {
		return nil, logger, cfg, err
	}
	return engine, logger, cfg, nil
}

// parsePoint parses "x,y".
func parsePoint(s string) (int, int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected x,y, got %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid x %q", parts[0])
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid y %q", parts[1])
	}
	return x, y, nil
}

// parseCoords parses two positional coordinate arguments.
func parseCoords(args []string) (int, int, error) {
	x, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid x %q", args[0])
	}
	y, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid y %q", args[1])
	}
	return x, y, nil
}

// printState writes the engine's position and power.
func printState(cmd *cobra.Command, engine *rover.Engine) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Position: %s\n", engine.Position())
	fmt.Fprintf(out, "Power used: %d\n", engine.PowerUsed())
}
