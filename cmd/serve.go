package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/cobra"

	"riocaja-smart-backend/cmd/config"
	migration "riocaja-smart-backend/cmd/database/migrate"
	"riocaja-smart-backend/internal/utils"
)

var skipMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the receipts API",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := config.ConnectDB()
		if err != nil {
			return err
		}
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}

		if !skipMigrate {
			if err := migration.Migrate(db); err != nil {
				return err
			}
		}

		app, logFile, err := config.NewApp(db)
		if err != nil {
			return err
		}
		defer logFile.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			errCh <- app.Listen(":" + utils.GetConfig("APP_PORT"))
		}()

		select {
		case err := <-errCh:
			return fmt.Errorf("server stopped: %w", err)
		case <-ctx.Done():
		}

		log.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil && !errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "Do not migrate the schema on startup")
	rootCmd.AddCommand(serveCmd)
}
