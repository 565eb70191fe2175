package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chase/internal/games/chase"
)

var (
	flagSimDuration time.Duration
	flagSimMaxLevel int
	flagSimRealtime bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Let the autopilot play headless",
	Long: `Runs a game with the autopilot steering the player and prints the final
state. By default the game runs on a logical clock as fast as possible, so
the same --seed always prints the same result. With --realtime it runs on
the wall clock and logs each level.

Examples:
  chase sim --seed 42
  chase sim --seed 42 --max-level 3 --difficulty hard
  chase sim --realtime --duration 30s --log-level info`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().DurationVar(&flagSimDuration, "duration", 10*time.Minute, "Game time limit")
	simCmd.Flags().IntVar(&flagSimMaxLevel, "max-level", 0, "Stop on reaching this level (0 = no limit)")
	simCmd.Flags().BoolVar(&flagSimRealtime, "realtime", false, "Run on the wall clock")
}

func runSim(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	opts := chase.Options{Config: cfg, Seed: seed, Logger: logger}

	var snap chase.Snapshot
	if flagSimRealtime {
		snap, err = simRealtime(opts)
		if err != nil {
			return err
		}
	} else {
		snap = chase.Simulate(chase.SimOptions{
			Options:  opts,
			Duration: flagSimDuration,
			MaxLevel: flagSimMaxLevel,
		})
	}

	printSnapshot(seed, snap)
	return nil
}

// simRealtime drives the autopilot through a Runner until the game ends,
// the time limit passes, the level limit is hit or the user interrupts.
func simRealtime(opts chase.Options) (chase.Snapshot, error) {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	ctx, cancel = context.WithTimeout(ctx, flagSimDuration)
	defer cancel()

	r := chase.NewRunner(opts)
	r.StopOnGameOver = true
	r.BeforePlayerTick = chase.Autopilot{}.Steer

	lastLevel := 0
	r.StateTopic().Subscribe(func(s chase.GameState) {
		if s.Level == lastLevel {
			return
		}
		lastLevel = s.Level
		logger.Info("level", "level", s.Level, "score", s.Score, "lives", s.Lives)
		if flagSimMaxLevel > 0 && s.Level >= flagSimMaxLevel {
			cancel()
		}
	})

	err := r.Run(ctx)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
		return chase.Snapshot{}, err
	}
	// Run has returned, so the engine is stopped and safe to read here
	return r.Engine().Snapshot(), nil
}

func printSnapshot(seed int64, s chase.Snapshot) {
	fmt.Printf("seed:     %d\n", seed)
	fmt.Printf("phase:    %s\n", s.Phase)
	fmt.Printf("level:    %d (%s)\n", s.Level, chase.TemplateFor(s.Level).Name)
	fmt.Printf("score:    %d\n", s.Score)
	fmt.Printf("lives:    %d\n", s.Lives)
	fmt.Printf("pellets:  %d left\n", s.PelletsRemaining)
	fmt.Printf("player:   (%d,%d) moving %s\n", s.Player.X, s.Player.Y, s.PlayerDir)
	for _, g := range s.Ghosts {
		state := ""
		if g.Scared {
			state = " scared"
		}
		fmt.Printf("ghost %d:  (%d,%d) %s%s\n", g.ID, g.Position.X, g.Position.Y, g.ID.Role(), state)
	}
}
