// chomp is a terminal arcade game: steer a hungry square through a walled
// arena and chase down the food.
//
// Usage:
//
//	chomp play               - Play in the local terminal
//	chomp serve              - Start an SSH server for remote play
//
// Global flags:
//
//	--fps <rate>     - Simulation tick rate (default: 60)
//	--seed <value>   - RNG seed for reproducible food placement
//	--config <path>  - Path to a custom game config YAML
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagFPS    int
	flagSeed   int64
	flagConfig string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "chomp",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chomp",
	Short: "Chomp - chase food around a walled arena in your terminal",
	Long: `Chomp is a terminal arcade game: a hungry square chases food pickups
inside a walled arena at a fixed 60 Hz simulation rate.

Controls:
  Arrows/WASD  - Move
  P            - Pause
  R            - Restart
  Q/Esc        - Quit

Examples:
  chomp play
  chomp play --seed 42
  chomp play --config ./my-chomp.yaml
  chomp serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Simulation tick rate")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}
