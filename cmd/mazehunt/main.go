// mazehunt is a TUI maze pursuit game played in the terminal.
//
// Usage:
//
//	mazehunt list              - List available game modes
//	mazehunt play <mode>       - Play a mode
//	mazehunt menu              - Start menu to pick modes interactively
//	mazehunt gen               - Generate a maze and print it
//	mazehunt serve             - Start SSH server for remote play
//	mazehunt scores <mode>     - Show high scores for a mode
//
// Global flags:
//
//	--fps <rate>    - Set frame rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible mazes
//	--db <path>     - Set database path (default: ~/.mazehunt/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/mazehunt/internal/games/chase"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mazehunt",
	Short: "Maze Hunt - Outrun the pursuers in your terminal",
	Long: `Maze Hunt is a terminal game about clearing procedurally generated
mazes while four kinds of pursuers close in on you.

Available commands:
  list     - Show all available game modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  gen      - Generate a maze and print it
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  mazehunt list
  mazehunt play chase
  mazehunt play chase --seed 42
  mazehunt menu
  mazehunt gen --width 31 --height 21
  mazehunt serve --ssh :2222
  mazehunt scores chase`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mazehunt/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
