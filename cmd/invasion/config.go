package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invasion/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective settings file",
	Long: `Print the settings the game would run with, as YAML.
The output can be saved and edited, then passed back with --config
or placed at ~/.invasion/invasion.yaml.

Examples:
  invasion config > my-invasion.yaml
  invasion config --defaults
  invasion --config my-invasion.yaml`,
	RunE: runConfig,
}

var flagDefaults bool

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in settings file instead")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := cfg.Marshal()
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}
