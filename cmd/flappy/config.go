package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print game tuning",
	Long: `Print the tuning as YAML.

Subcommands:
  show      - The effective tuning after --config, search paths and --fps
  defaults  - The embedded defaults, a starting point for a custom file

Examples:
  flappy config defaults > ~/.flappy/configs/flappy.yaml
  flappy config show --fps 30`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective tuning",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		cfg, err := loadConfig()
		if err != nil {
			exitf("%v", err)
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			exitf("%v", err)
		}
		os.Stdout.Write(data)
	},
}

var configDefaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the embedded default tuning",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Print(string(config.DefaultYAML()))
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configDefaultsCmd)
}
