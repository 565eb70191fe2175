package main

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-chase/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game config",
	Long: `Prints the config the game would use, after the search order and the
--difficulty preset are applied. With --defaults it prints the built-in
file, ready to copy to ~/.arcade/configs/chase.yaml.

Search order:
  1. --config <path>
  2. ~/.arcade/configs/chase.yaml
  3. ./configs/chase.yaml
  4. built-in defaults

Examples:
  chase config
  chase config --difficulty hard
  chase config --defaults > ~/.arcade/configs/chase.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in defaults file")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagConfigDefaults {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}
