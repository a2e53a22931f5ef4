package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	ViewTUI = "tui"
	ViewCLI = "cli"
)

type AppConfig struct {
	RuntimePath string `env:"DAYBOOK_RUNTIME_PATH" envDefault:".daybook"`
	// Empty means the question bank bundled into the binary.
	QuestionsPath string `env:"DAYBOOK_QUESTIONS_PATH"`
	View          string `env:"DAYBOOK_VIEW" envDefault:"tui"`

	PageSize      int           `env:"DAYBOOK_PAGE_SIZE" envDefault:"5"`
	ToastDuration time.Duration `env:"DAYBOOK_TOAST_DURATION" envDefault:"2s"`
	ClockInterval time.Duration `env:"DAYBOOK_CLOCK_INTERVAL" envDefault:"1s"`
	// Cron spec, evaluated in local time, for switching to the next day's question.
	RolloverSpec string `env:"DAYBOOK_ROLLOVER_SPEC" envDefault:"0 0 * * *"`
}

// LoadAppConfig parses the environment and resolves the runtime path.
func LoadAppConfig() (*AppConfig, error) {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		return nil, err
	}
	c.RuntimePath = resolveRuntimePath(c.RuntimePath)

	if c.View != ViewTUI && c.View != ViewCLI {
		return nil, fmt.Errorf("DAYBOOK_VIEW must be %q or %q, got %q", ViewTUI, ViewCLI, c.View)
	}
	if c.PageSize < 1 {
		return nil, fmt.Errorf("DAYBOOK_PAGE_SIZE must be positive, got %d", c.PageSize)
	}
	if c.ClockInterval <= 0 {
		return nil, fmt.Errorf("DAYBOOK_CLOCK_INTERVAL must be positive, got %s", c.ClockInterval)
	}
	return c, nil
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "daybook.db")
}

func (c AppConfig) GetLogPath() string {
	return filepath.Join(c.RuntimePath, "daybook.log")
}

func (c AppConfig) GetEnvPath() string {
	return filepath.Join(c.RuntimePath, ".env")
}

func (c AppConfig) GetHistoryPath() string {
	return filepath.Join(c.RuntimePath, "input_history")
}
