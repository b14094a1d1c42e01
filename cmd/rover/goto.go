package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagShowPath bool

var gotoCmd = &cobra.Command{
	Use:   "goto <x> <y>",
	Short: "Walk a straight line to a target cell",
	Long: `Move the rover to the target cell along a rasterized straight line.

The line is broken into unit N/E/S/W steps, so the power used equals the
number of steps taken.

Examples:
  rover goto 5 7
  rover goto 0 0 --start 9,9 --show-path`,
	Args: cobra.ExactArgs(2),
	RunE: runGoto,
}

func init() {
	gotoCmd.Flags().BoolVar(&flagShowPath, "show-path", false, "Print the commands used")
}

func runGoto(cmd *cobra.Command, args []string) error {
	x, y, err := parseCoords(args)
	if err != nil {
		return err
	}

	engine, logger, _, err := setup(cmd)
	if err != nil {
		return err
	}

	path, err := engine.Plan(x, y)
	if err != nil {
		logger.Debug("target rejected", "x", x, "y", y, "error", err)
		return err
	}
	if err := engine.MoveTo(x, y); err != nil {
		return err
	}
	logger.Debug("moved to target", "steps", len(path), "power", engine.PowerUsed())

	if flagShowPath {
		fmt.Fprintf(cmd.OutOrStdout(), "Path: %s\n", path)
	}
	printState(cmd, engine)
	return nil
}
