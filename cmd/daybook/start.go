package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/sandevgo/daybook/internal/config"
	"github.com/sandevgo/daybook/pkg/log"
	"github.com/sandevgo/daybook/pkg/srv"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

var viewFlag string

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Open today's question",
	Long:  `Shows today's question, saves your answer and lets you browse past answers and the calendar.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer func() { flushLog() }()

		cfg, err := loadConfig(ctx)
		if err != nil {
			return err
		}

		view := cfg.View
		if viewFlag != "" {
			view = viewFlag
		}
		if view != config.ViewTUI && view != config.ViewCLI {
			return fmt.Errorf("unknown view %q, use %s or %s", view, config.ViewTUI, config.ViewCLI)
		}

		// The full-screen view owns the terminal, so logs go to a file.
		if view == config.ViewTUI {
			flushLog()
			ctx, flushLog, err = log.NewFileLogger(ctx, cfg.GetLogPath(), isDebug())
			if err != nil {
				return err
			}
		}

		logger := log.FromCtx(ctx)
		logger.Info().Str("view", view).Msg("starting daybook")

		app, err := NewApp(ctx, cfg, view)
		if err != nil {
			return err
		}

		return run(ctx, app, view)
	},
}

func run(ctx context.Context, app *App, view string) error {
	logger := log.FromCtx(ctx)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	all := append(append([]srv.Service{}, app.Background...), app.View)
	defer srv.ShutdownServices(ctx, all, shutdownTimeout)

	if initErr := app.Controller.Init(ctx); initErr != nil {
		logger.Error().Err(initErr).Msg("failed to start journal")
		// let the user read the error screen before exiting
		if view == config.ViewTUI {
			_ = app.View.Start(ctx)
		}
		return initErr
	}

	errs := srv.StartServices(ctx, app.Background)

	viewDone := make(chan error, 1)
	go func() { viewDone <- app.View.Start(ctx) }()

	var err error
	select {
	case err = <-viewDone:
	case err = <-errs:
	case <-ctx.Done():
	}
	cancel()

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info().Msg("daybook has been shut down gracefully")
	return nil
}

func init() {
	startCmd.Flags().StringVar(&viewFlag, "view", "", "view to open: tui or cli (default from DAYBOOK_VIEW)")
	rootCmd.AddCommand(startCmd)
}
