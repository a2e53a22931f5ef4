package main

import (
	"context"
	"fmt"

	"github.com/sandevgo/daybook/internal/config"
	"github.com/sandevgo/daybook/internal/service/installer"
	"github.com/sandevgo/daybook/internal/storage/sqlite"
	"github.com/sandevgo/daybook/pkg/log"
	"github.com/spf13/cobra"
)

var (
	initYes   bool
	initForce bool
)

var initCmd = &cobra.Command{
	Use:           "init",
	Short:         "Create the runtime directory, database and .env file",
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)

		// defaults come from the environment only, not from an existing .env
		defaults, err := config.LoadAppConfig()
		if err != nil {
			return err
		}

		if initYes {
			if err := installer.SaveEnv(defaults, initForce); err != nil {
				return err
			}
			if err := initFiles(ctx)(defaults); err != nil {
				return err
			}
		} else {
			if _, err := installer.RunWizard(*defaults, installer.DefaultHooks(ctx, initFiles(ctx))); err != nil {
				return err
			}
		}

		logger.Info().Msgf("initialized runtime directory at: %s", defaults.GetRuntimePath())
		logger.Info().Msg("Setup complete! You can now run 'daybook start'.")
		return nil
	},
}

// initFiles creates the database so the first start does not migrate.
func initFiles(ctx context.Context) func(cfg *config.AppConfig) error {
	return func(cfg *config.AppConfig) error {
		db, err := sqlite.NewDB(ctx, cfg.GetDatabasePath())
		if err != nil {
			return fmt.Errorf("failed to create database: %w", err)
		}
		return db.Close()
	}
}

func init() {
	initCmd.Flags().BoolVarP(&initYes, "yes", "y", false, "write the defaults without asking")
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing .env (with --yes)")
	rootCmd.AddCommand(initCmd)
}
