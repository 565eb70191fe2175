// chase is a maze chase game for the terminal: eat every pellet while four
// ghosts hunt you, each with its own strategy.
//
// Usage:
//
//	chase play [variant]     - Play a variant (default from --difficulty)
//	chase menu               - Pick a variant interactively
//	chase list               - List variants
//	chase scores [variant]   - Show the best runs
//	chase mazes              - Show the maze templates
//	chase sim                - Run the autopilot headless
//	chase config             - Print the effective game config
//	chase serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/chase.db)
//	--config <path>       - Custom YAML config
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chase/internal/config"
	"github.com/vovakirdan/tui-chase/internal/games/chase"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "chase",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chase",
	Short: "Chase - a maze chase game in your terminal",
	Long: `Chase is a maze game for the terminal. Eat every pellet on the board
while four ghosts hunt you down. Power pellets turn the tables for a while.

Each ghost has its own plan: one chases you directly, one cuts you off,
one flanks from the other side, and one only closes in when you are near.
They get faster and smarter with every level.

Examples:
  chase play
  chase play --difficulty hard
  chase menu
  chase sim --seed 42
  chase serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/chase.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(mazesCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup applies the global flags before any command runs.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)

	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	// Fail early instead of falling back to defaults inside the game
	if flagConfig != "" {
		if _, err := config.Load(flagConfig); err != nil {
			return err
		}
	}

	chase.SetConfigPath(flagConfig)
	chase.SetLogger(logger)
	return nil
}

// presetGameID returns the variant selected by --difficulty.
func presetGameID() string {
	// Validated in setup
	preset, _ := config.ParsePreset(flagDifficulty)
	return chase.GameID(preset)
}

// loadConfig returns the game config for the selected preset.
func loadConfig() (config.ChaseConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.ChaseConfig{}, err
	}
	preset, _ := config.ParsePreset(flagDifficulty)
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}
