// marsx is a 2D top-down space flight game played in the terminal.
//
// Usage:
//
//	marsx run                - Start the game
//	marsx stats              - Show play-session statistics
//	marsx config             - Print the effective configuration
//	marsx setup --build      - Build the game binary
//	marsx setup --update     - Update dependencies
//
// Global flags:
//
//	--config <path>     - Use a specific config file instead of the search order
//	--db <path>         - Session database path (default: ~/.marsx/sessions.db)
//	--log-level <lvl>   - Override debug.logging_level (debug, info, warn, error)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/threenigma/marsx/internal/config"
)

const gameName = "Mars-X"

// Overridden at build time by `marsx setup --build`.
var gameVersion = "0.1.0"

var (
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "marsx",
	Short: "Mars-X - 2D top-down space flight game",
	Long: `Mars-X is a 2D top-down space flight game with a fixed-rate frame
loop, delta-timed movement, and a batch physics step.

Available commands:
  run      - Start the game
  stats    - Show play-session statistics
  config   - Print the effective configuration
  setup    - Build the binary or update dependencies

Examples:
  marsx run
  marsx run --fps 120 --headless
  marsx config --write
  marsx setup --build`,
	Version: gameVersion,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a config file (replaces the search order)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.marsx/sessions.db", "Path to the session database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level override: debug, info, warn, error")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(setupCmd)
}

// loadConfig builds the effective configuration for a command.
func loadConfig() (config.Config, error) {
	return config.Load(flagConfig)
}

// newLogger builds the process logger from config with the flag override.
func newLogger(cfg config.Config) *log.Logger {
	level := cfg.Debug.LoggingLevel
	if flagLogLevel != "" {
		level = flagLogLevel
	}

	parsed, err := log.ParseLevel(level)
	if err != nil {
		parsed = log.InfoLevel
	}

	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           parsed,
		Prefix:          "marsx",
	})
}
