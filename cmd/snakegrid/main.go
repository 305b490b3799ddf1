// snakegrid simulates snakes on a character grid. Each snake lives only in
// the board cells: direction characters link its tail to its head.
//
// Usage:
//
//	snakegrid default             - Print the built-in board
//	snakegrid inspect <board>     - List the snakes found on a board
//	snakegrid run [board]         - Simulate a board and print the result
//	snakegrid foods               - List food placement policies
//	snakegrid history             - List journaled runs
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.snakegrid, ./configs, built-in)
//	--db <path>         - Run journal database (overrides storage.path)
//	--log-level <lvl>   - debug, info, warn, error (overrides log.level)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snakegrid/internal/config"
)

var (
	// Global flags
	flagConfig    string
	flagDBPath    string
	flagLogLevel  string
	flagLogFormat string

	// Resolved in PersistentPreRunE
	cfg    config.Config
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snakegrid",
	Short: "Simulate snakes encoded in a character grid",
	Long: `snakegrid runs snakes on a text board. Walls are '#', food is '*',
tails are w/a/s/d, body segments ^/</v/>, heads W/A/S/D and a dead head x.

Available commands:
  default  - Print the built-in board
  inspect  - List the snakes on a board
  run      - Simulate a board
  foods    - List food placement policies
  history  - Show journaled runs

Examples:
  snakegrid default > level.txt
  snakegrid inspect level.txt
  snakegrid run level.txt --ticks 10
  snakegrid run --food first-empty --out result.txt
  snakegrid history`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run journal database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "Log format: text, json, auto")

	rootCmd.AddCommand(defaultCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(foodsCmd)
	rootCmd.AddCommand(historyCmd)
}

// setup loads the configuration, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	if flagDBPath != "" {
		loaded.Storage.Path = flagDBPath
		loaded.Storage.Enabled = true
	}
	if flagLogLevel != "" {
		loaded.Log.Level = flagLogLevel
	}
	if flagLogFormat != "" {
		loaded.Log.Format = flagLogFormat
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	l, err := newLogger(os.Stderr, loaded.Log)
	if err != nil {
		return err
	}

	cfg = loaded
	logger = l
	return nil
}
