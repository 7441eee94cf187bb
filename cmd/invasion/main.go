// invasion is an alien-invasion shoot-em-up for the terminal.
//
// Usage:
//
//	invasion                 - Play in the terminal
//	invasion window          - Play in a desktop window
//	invasion serve           - Start SSH server for remote play
//	invasion scores          - Show the scoreboard
//	invasion config          - Print the effective settings file
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.invasion/scores.db)
//	--config <path>       - Load settings from a YAML file
//	--difficulty <mode>   - Start in easy, medium or hard mode
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invasion/internal/config"
	"github.com/vovakirdan/tui-invasion/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invasion",
	Short: "Alien Invasion - defend the galaxy from your terminal",
	Long: `Alien Invasion is a fixed-shooter: a fleet of alien soldiers marches
down the screen and your ship has to shoot them all before they land.
Clear the final level and the alien general comes for you.

Available commands:
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View the scoreboard
  config   - Print the effective settings file

Examples:
  invasion
  invasion --difficulty hard
  invasion window
  invasion serve --ssh :2222
  invasion scores --difficulty easy`,
	SilenceUsage:      true,
	PersistentPreRunE: checkFlags,
	RunE:              runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a settings YAML file")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Starting difficulty: easy, medium, hard")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")

	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// checkFlags rejects global flag values no frontend can run with.
func checkFlags(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	return nil
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "invasion",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadConfig reads the settings file and applies the --difficulty flag on top of it.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, fmt.Errorf("loading settings: %w", err)
	}
	if flagDifficulty != "" {
		mode, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			return cfg, err
		}
		cfg.Difficulty.Default = mode.String()
	}
	return cfg, nil
}

// openStore opens the score database. Games still run without one.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
