package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pathCmd = &cobra.Command{
	Use:   "path <x> <y>",
	Short: "Show the commands goto would use",
	Long: `Print the N/E/S/W commands that 'rover goto' would execute from the
start cell to the target, without moving.

Examples:
  rover path 5 7
  rover path 0 0 --start 6,4`,
	Args: cobra.ExactArgs(2),
	RunE: runPath,
}

func runPath(cmd *cobra.Command, args []string) error {
	x, y, err := parseCoords(args)
	if err != nil {
		return err
	}

	engine, _, _, err := setup(cmd)
	if err != nil {
		return err
	}

	path, err := engine.Plan(x, y)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(path) == 0 {
		fmt.Fprintln(out, "Already at target.")
		return nil
	}
	fmt.Fprintln(out, path)
	fmt.Fprintf(out, "%d steps from %s to (%d, %d)\n", len(path), engine.Position(), x, y)
	return nil
}
