package installer

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/daybook/internal/config"
	"github.com/sandevgo/daybook/pkg/env"
)

// ErrEnvExists stops the wizard from overwriting an existing configuration.
var ErrEnvExists = errors.New(".env file already exists")

// SaveEnvStep writes the collected configuration to the .env file
type SaveEnvStep struct {
	err   error
	saved bool
}

func NewSaveEnvStep() Step {
	return &SaveEnvStep{}
}

func (s *SaveEnvStep) Init() tea.Cmd {
	return func() tea.Msg { return nextMsg{} }
}

func (s *SaveEnvStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if s.saved {
		return nil, nil
	}

	if err := SaveEnv(&state.Config, false); err != nil {
		s.err = err
		return s, nil
	}

	s.saved = true
	return nil, nil
}

func (s *SaveEnvStep) View(state *InstallState) string {
	if s.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", s.err)) + "\n\n(press ctrl+c to quit)\n"
	}
	if s.saved {
		return "Configuration saved successfully!\n"
	}
	return "Saving configuration...\n"
}

// SaveEnv writes cfg to its runtime .env file. An existing file is kept
// unless overwrite is set.
func SaveEnv(cfg *config.AppConfig, overwrite bool) error {
	if err := os.MkdirAll(cfg.GetRuntimePath(), 0755); err != nil {
		return fmt.Errorf("failed to create runtime directory: %w", err)
	}

	envPath := cfg.GetEnvPath()
	if _, err := os.Stat(envPath); err == nil && !overwrite {
		return fmt.Errorf("%w at %s", ErrEnvExists, envPath)
	}

	content, err := env.MarshalEnv(cfg)
	if err != nil {
		return fmt.Errorf("failed to render .env: %w", err)
	}

	if err := os.WriteFile(envPath, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", envPath, err)
	}
	return nil
}

// InitializeFilesStep prepares the runtime directory
type InitializeFilesStep struct {
	initFiles func(cfg *config.AppConfig) error
	err       error
	done      bool
}

func NewInitializeFilesStep(initFiles func(cfg *config.AppConfig) error) Step {
	return &InitializeFilesStep{initFiles: initFiles}
}

func (s *InitializeFilesStep) Init() tea.Cmd {
	return func() tea.Msg { return nextMsg{} }
}

func (s *InitializeFilesStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if s.done {
		return nil, nil
	}

	if s.initFiles != nil {
		if err := s.initFiles(&state.Config); err != nil {
			s.err = err
			return s, nil
		}
	}

	s.done = true
	return nil, nil
}

func (s *InitializeFilesStep) View(state *InstallState) string {
	if s.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", s.err)) + "\n\n(press ctrl+c to quit)\n"
	}
	if s.done {
		return "Runtime files initialized successfully!\n"
	}
	return "Initializing runtime files...\n"
}
