package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/chomp-tui/chomp/internal/chomp"
	"github.com/chomp-tui/chomp/internal/config"
	"github.com/chomp-tui/chomp/internal/core"
	"github.com/chomp-tui/chomp/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play chomp in the local terminal",
	Long: `Start a game session in the current terminal.

Examples:
  chomp play
  chomp play --fps 30
  chomp play --config ./my-chomp.yaml`,
	Run: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	// Validate the configuration before touching the terminal: a broken
	// arena is a startup failure, not an in-game condition.
	if _, err := config.LoadChomp(flagConfig); err != nil {
		logger.Fatal("invalid configuration", "error", err)
	}
	chomp.SetConfigPath(flagConfig)

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if err := tui.Run(chomp.New(), cfg); err != nil {
		logger.Fatal("game session failed", "error", err)
	}
}
