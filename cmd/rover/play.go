package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/grid-rover/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Drive the rover interactively",
	Long: `Open the interactive terminal view.

Controls:
  Arrows / hjkl / n e s w  - Step one cell
  :                        - Type commands (N,E,E) or goto X Y
  ?                        - Toggle help
  Q/Ctrl+C                 - Quit

Examples:
  rover play
  rover play --grid-size 20 --start 10,10`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	engine, logger, cfg, err := setup(cmd)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		HistorySize: cfg.UI.HistorySize,
		ShowPath:    cfg.UI.ShowPath,
		Width:       width,
		Height:      height,
	}

	logger.Debug("starting interactive session", "width", width, "height", height)
	if err := tui.Run(engine, logger, opts); err != nil {
		return err
	}

	printState(cmd, engine)
	return nil
}
