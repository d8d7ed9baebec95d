// invaders plays Space Invaders in the terminal.
//
// Usage:
//
//	invaders                 - Title menu (same as "invaders menu")
//	invaders play            - Start a game right away
//	invaders menu            - Title menu with the scoreboard
//	invaders config          - Print the effective tuning as YAML
//
// Global flags:
//
//	--fps <rate>          - Tick rate (default: 60)
//	--seed <value>        - RNG seed for reproducible games (0 = from the clock)
//	--config <path>       - Tuning YAML file
//	--difficulty <name>   - easy, normal or hard
//	--log-file <path>     - Write the log here while the game runs
//	--log-level <level>   - debug, info, warn or error
//	--sound               - Enable sound effects
//
// Every flag can also be set through the environment with an INVADERS_
// prefix, for example INVADERS_FPS=30 or INVADERS_LOG_LEVEL=debug.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vovakirdan/tui-invaders/internal/config"
	_ "github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Space Invaders in your terminal",
	Long: `Defend the planet from waves of descending aliens.

Available commands:
  play     - Start a game right away
  menu     - Title menu with the scoreboard (default)
  config   - Print the effective tuning

Examples:
  invaders
  invaders play --difficulty hard
  invaders play --seed 42 --fps 30
  invaders config --difficulty easy`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
	RunE:              runMenu,
}

func init() {
	flags := rootCmd.PersistentFlags()
	registerFlags(flags)
	bindSettings(v, flags)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(configCmd)
}

func registerFlags(flags *pflag.FlagSet) {
	flags.Int("fps", 60, "Tick rate (frames per second)")
	flags.Int64("seed", 0, "RNG seed (0 = random based on time)")
	flags.String("config", "", "Path to a tuning YAML file")
	flags.String("difficulty", string(config.DifficultyNormal), "Difficulty preset: "+config.PresetNames())
	flags.String("log-file", "", "Write logs to this file (discarded otherwise)")
	flags.String("log-level", "info", "Log level: debug, info, warn, error")
	flags.Bool("sound", false, "Enable sound effects")
	flags.Float64("volume", 0.5, "Sound volume from 0 to 1")
}
