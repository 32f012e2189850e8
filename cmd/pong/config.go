package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the default configuration YAML to stdout.

Save it to ~/.tui-pong/config.yaml or ./configs/pong.yaml to customize,
or pass a copy explicitly with 'pong play --config'.

Example:
  pong config > ~/.tui-pong/config.yaml`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Print(string(config.DefaultYAML()))
	},
}
