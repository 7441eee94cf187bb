package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invasion/internal/invasion"
	"github.com/vovakirdan/tui-invasion/internal/platform/window"
)

var (
	flagCols int
	flagRows int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play there instead of the terminal.
The window renders the same character grid; resizing it resizes the grid.

Controls:
  Left/Right - Move the ship
  Space      - Fire
  G          - Start from the menu
  P          - Pause
  R          - Back to the menu
  Q          - Quit
  Mouse      - Click the menu buttons

Examples:
  invasion window
  invasion window --cols 120 --rows 40`,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagCols, "cols", 100, "Grid width in cells")
	windowCmd.Flags().IntVar(&flagRows, "rows", 36, "Grid height in cells")
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger := newLogger()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cue, closeCue := newCue(logger)
	defer closeCue()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	game := invasion.New(cfg, cue)
	return window.Run(game, store, window.Options{
		Cols:     max(flagCols, invasion.MinScreenW),
		Rows:     max(flagRows, invasion.MinScreenH),
		TickRate: flagFPS,
		Seed:     seed(),
		Title:    "Alien Invasion",
	}, logger)
}
