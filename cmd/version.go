package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sahaltools/sahal-ledger/internal/api"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the sahal-ledger version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sahal-ledger v%s\n", api.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
