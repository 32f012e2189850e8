package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresPlain bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Browse match history",
	Long: `Browse saved matches and aggregate statistics.

Runs an interactive browser in a terminal; prints a plain listing when
output is redirected or --plain is given.

Examples:
  pong scores
  pong scores --plain
  pong scores --plain --limit 50`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 20, "Number of matches to show in plain mode")
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print a plain listing instead of the interactive browser")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening match database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if !flagScoresPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunHistory(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running history browser: %v\n", err)
			os.Exit(1)
		}
		return
	}

	printScores(store)
}

// printScores writes the plain listing used for non-interactive output.
func printScores(store *storage.Store) {
	matches, err := store.RecentMatches(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Match History")
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Play 'pong play' to record the first match!")
		return
	}

	fmt.Printf("  %-16s  %-5s  %-8s  %-7s  %-6s  %-5s  %s\n", "When", "Mode", "CPU", "Score", "Winner", "Rally", "Time")
	fmt.Printf("  %-16s  %-5s  %-8s  %-7s  %-6s  %-5s  %s\n", "----", "----", "---", "-----", "------", "-----", "----")

	for _, m := range matches {
		difficulty := m.Difficulty
		if difficulty == "" {
			difficulty = "-"
		}
		fmt.Printf("  %-16s  %-5s  %-8s  %-7s  %-6s  %-5d  %d:%02d\n",
			m.CreatedAt.Format("2006-01-02 15:04"),
			m.Mode,
			difficulty,
			fmt.Sprintf("%d-%d", m.ScoreLeft, m.ScoreRight),
			m.Winner,
			m.LongestRally,
			m.Duration/60, m.Duration%60,
		)
	}

	stats, err := store.GetStats()
	if err != nil {
		return
	}

	fmt.Println()
	fmt.Printf("Matches: %d  |  Left wins: %d  |  Right wins: %d  |  Longest rally: %d\n",
		stats.MatchesCount, stats.LeftWins, stats.RightWins, stats.LongestRally)
}
