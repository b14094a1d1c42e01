package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/grid-rover/internal/rover"
)

var runCmd = &cobra.Command{
	Use:   "run <commands>",
	Short: "Apply a list of movement commands",
	Long: `Apply movement commands to the rover and print where it ends up.

Commands are N, E, S and W (case-sensitive). Pass them either as one
comma-separated argument or as separate arguments. The whole list is
checked before the rover moves; any invalid command rejects the batch.

Examples:
  rover run N,N,E,E
  rover run N E N E N
  rover run S --start 0,0     # clamped at the edge, costs no power`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	engine, logger, _, err := setup(cmd)
	if err != nil {
		return err
	}

	var input rover.CommandInput = rover.Text(args[0])
	if len(args) > 1 {
		input = rover.Tokens(args)
	}

	if err := engine.ParseCommands(input); err != nil {
		logger.Debug("commands rejected", "error", err)
		return err
	}
	logger.Debug("applied commands", "position", engine.Position().String(), "power", engine.PowerUsed())

	printState(cmd, engine)
	return nil
}
