package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"riocaja-smart-backend/internal/utils"
)

// cfgFile is the YAML configuration file; .env and the environment override it.
var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "riocaja",
	Short: "RioCaja Smart - payment receipt storage and daily closing reports",
	Long: `RioCaja Smart stores payment receipts scanned at point-of-sale
terminals and computes the daily closing report: the total value of the
day's receipts grouped by transaction type.

Example Usage:
  riocaja serve                     # Migrate the schema and start the API
  riocaja migrate                   # Create or update the receipts table
  riocaja serve --config prod.yaml  # Use a custom configuration file`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		utils.LoadConfig(cfgFile)
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file",
	)
}
