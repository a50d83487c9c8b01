package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-kittens/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would start with, after the config file,
difficulty preset, --mute and environment overrides are applied.

The output is valid YAML and can be saved as ~/.kittens/configs/kittens.yaml.

Environment:
  KITTENS_AUDIO_ENABLED  - true/false
  KITTENS_MASTER_VOLUME  - 0-100

Examples:
  kittens config
  kittens config --difficulty hard > ~/.kittens/configs/kittens.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
