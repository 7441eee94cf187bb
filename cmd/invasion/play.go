package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invasion/internal/audio"
	"github.com/vovakirdan/tui-invasion/internal/core"
	"github.com/vovakirdan/tui-invasion/internal/invasion"
	"github.com/vovakirdan/tui-invasion/internal/platform/tui"
)

var (
	flagMute   bool
	flagVolume float64
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
	rootCmd.PersistentFlags().Float64Var(&flagVolume, "volume", 0.5, "Sound effect volume (0-1)")
}

// newCue opens the speaker. Without one the game plays silently.
func newCue(logger *log.Logger) (invasion.Cue, func()) {
	if flagMute || flagVolume <= 0 {
		return audio.Nop{}, func() {}
	}
	player := audio.NewPlayer(min(flagVolume, 1))
	if err := player.Init(); err != nil {
		logger.Warn("no audio device, playing without sound", "error", err)
		return audio.Nop{}, func() {}
	}
	return player, player.Close
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger := newLogger()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed(),
	}

	cue, closeCue := newCue(logger)
	defer closeCue()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	game := invasion.New(cfg, cue)
	if err := tui.Run(game, store, runtime, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
