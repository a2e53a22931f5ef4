package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sandevgo/daybook/internal/config"
	"github.com/sandevgo/daybook/internal/core"
	"github.com/sandevgo/daybook/internal/service/command"
	"github.com/sandevgo/daybook/internal/service/journal"
	"github.com/sandevgo/daybook/internal/service/memory"
	"github.com/sandevgo/daybook/internal/service/questions"
	"github.com/sandevgo/daybook/internal/service/scheduler"
	"github.com/sandevgo/daybook/internal/storage/sqlite"
	"github.com/sandevgo/daybook/internal/transport/cli"
	"github.com/sandevgo/daybook/internal/transport/tui"
	"github.com/sandevgo/daybook/pkg/log"
	"github.com/sandevgo/daybook/pkg/srv"
)

// App is the wired journal of one `daybook start` run.
type App struct {
	Controller *journal.Controller
	// View runs in the foreground; Background runs until View returns.
	View       srv.Service
	Background []srv.Service
}

func NewApp(ctx context.Context, cfg *config.AppConfig, view string) (*App, error) {
	db, store, err := initStorage(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	app := &App{Background: []srv.Service{srv.NewCleanup(db.Close)}}

	memLog := memory.NewLog(store)
	sched := scheduler.New(store, initBank(cfg), memLog)
	jcfg := journal.Config{
		PageSize:      cfg.PageSize,
		ToastDuration: cfg.ToastDuration,
		ClockInterval: cfg.ClockInterval,
		Location:      time.Local,
	}

	switch view {
	case config.ViewCLI:
		console := cli.NewConsole(os.Stdout)
		ctrl := journal.NewController(jcfg, sched, memLog, store, console)
		rl, err := cli.NewReadLine(ctrl, command.New(command.NewCommands(ctrl)), console, cfg)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to initialize console: %w", err)
		}
		app.Controller, app.View = ctrl, rl
	default:
		renderer := tui.NewRenderer()
		ctrl := journal.NewController(jcfg, sched, memLog, store, renderer)
		app.Controller, app.View = ctrl, tui.New(ctrl, renderer)
	}

	rollover := scheduler.NewRollover(cfg.RolloverSpec, time.Local, app.Controller.Refresh)
	app.Background = append(app.Background, app.Controller, rollover)

	return app, nil
}

func initStorage(ctx context.Context, cfg *config.AppConfig) (*sql.DB, core.KVStore, error) {
	db, err := sqlite.NewDB(ctx, cfg.GetDatabasePath())
	if err != nil {
		return nil, nil, err
	}
	return db, sqlite.NewKVStore(db), nil
}

func initBank(cfg *config.AppConfig) *questions.Bank {
	if cfg.QuestionsPath != "" {
		return questions.NewFileBank(cfg.QuestionsPath)
	}
	return questions.NewEmbeddedBank()
}

// loadConfig reads the runtime .env, if any, and parses the configuration.
func loadConfig(ctx context.Context) (*config.AppConfig, error) {
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		return nil, fmt.Errorf("failed to init env: %w", err)
	}
	cfg, err := config.LoadAppConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := config.AppConfig{RuntimePath: runtimePath}.GetEnvPath()

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
