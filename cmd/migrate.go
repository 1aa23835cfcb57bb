package cmd

import (
	"github.com/spf13/cobra"

	"riocaja-smart-backend/cmd/config"
	migration "riocaja-smart-backend/cmd/database/migrate"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the receipts table and its indexes",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := config.ConnectDB()
		if err != nil {
			return err
		}
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}
		return migration.Migrate(db)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
