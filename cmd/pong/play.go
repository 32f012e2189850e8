package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/sim"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagHotseat    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match",
	Long: `Start a pong match against the CPU, or two players on one keyboard
with --hotseat.

Controls:
  W/S        - Left paddle up/down
  Up/Down    - Right paddle (steers the left paddle against the CPU)
  P/Space    - Pause
  R          - Restart
  A          - Toggle CPU opponent
  D/Tab      - Cycle CPU difficulty
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slow reactions, sloppy aim
  medium - Balanced opponent
  hard   - Fast reactions, sharp prediction

Examples:
  pong play
  pong play --difficulty hard
  pong play --hotseat
  pong play --config ./my-pong.yaml
  pong play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "CPU difficulty: easy, medium, hard")
	playCmd.Flags().BoolVar(&flagHotseat, "hotseat", false, "Two players on one keyboard (no CPU)")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Load game configuration
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Difficulty flag overrides the config
	if flagDifficulty != "" {
		if _, ok := sim.ParseDifficulty(flagDifficulty); !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (want easy, medium, or hard)\n", flagDifficulty)
			os.Exit(1)
		}
		cfg.AI.Difficulty = flagDifficulty
	}

	// Get terminal size, falling back to the config
	width, height := cfg.Window.Width, cfg.Window.Height
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Open match storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open match database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(cfg.Params(seed), store, tui.Options{
		Width:     width,
		Height:    height,
		TickRate:  flagFPS,
		AIEnabled: !flagHotseat,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
