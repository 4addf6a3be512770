// Package cmd defines the sahal-ledger command-line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// cfgFile is the path to an optional YAML configuration file,
// overridable with --config.
var cfgFile string

// logLevel overrides the configured log level when set.
var logLevel string

var rootCmd = &cobra.Command{
	Use:   "sahal-ledger",
	Short: "Turn SAHAL notification transcripts into a per-contact ledger",
	Long: `sahal-ledger converts the free-text notification transcript exported
from the SAHAL mobile-money app into structured transaction records,
then aggregates them per counterparty: totals sent and received, net
balance, activity counts, and a date span.

Example Usage:
  sahal-ledger analyze transactions.txt
  sahal-ledger analyze statement.pdf --top-n 10 --json report.json
  sahal-ledger serve --addr :8080`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command; called by main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to a YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
}
