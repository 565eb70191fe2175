package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chase/internal/games/chase"
)

var flagMazesShow bool

var mazesCmd = &cobra.Command{
	Use:   "mazes",
	Short: "List the maze templates",
	Long: `Lists the maze templates in rotation order. Level n plays template
(n-1) mod 4, so level 5 is back on the first maze.

Examples:
  chase mazes
  chase mazes --show`,
	Args: cobra.NoArgs,
	Run:  runMazes,
}

func init() {
	mazesCmd.Flags().BoolVar(&flagMazesShow, "show", false, "Print each layout")
}

func runMazes(_ *cobra.Command, _ []string) {
	templates := chase.Templates()
	for i, t := range templates {
		board := chase.LoadBoard(i + 1)
		fmt.Printf("%d. %-12s %3d pellets  (levels %d, %d, ...)\n",
			i+1, t.Name, board.CountPellets(), i+1, i+1+len(templates))
		if flagMazesShow {
			fmt.Println()
			fmt.Println(board.String())
		}
	}
}
