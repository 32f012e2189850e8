// pong is a terminal pong game with a predictive CPU opponent.
//
// Usage:
//
//	pong play                - Play against the CPU (or --hotseat for two players)
//	pong scores              - Browse match history
//	pong serve               - Start SSH server for remote play
//	pong config              - Print the default configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.tui-pong/matches.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
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
	Use:   "pong",
	Short: "Pong - Play pong in your terminal",
	Long: `Pong is a terminal rendition of the classic two-paddle arcade game,
with a predictive CPU opponent, hot-seat play, and remote play over SSH.

Available commands:
  play     - Play a match (CPU opponent or two-player hot-seat)
  scores   - Browse match history and statistics
  serve    - Start SSH server for remote play
  config   - Print the default configuration YAML

Examples:
  pong play
  pong play --difficulty hard
  pong play --hotseat
  pong scores
  pong serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tui-pong/matches.db", "Path to match history database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
