package installer

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
)

// FinalizationStep normalizes the collected values before they are saved
type FinalizationStep struct{}

func NewFinalizationStep() Step {
	return &FinalizationStep{}
}

func (s *FinalizationStep) Init() tea.Cmd {
	return func() tea.Msg { return nextMsg{} }
}

func (s *FinalizationStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	Finalize(state)
	return nil, nil
}

func (s *FinalizationStep) View(state *InstallState) string {
	return "Finalizing configuration...\n"
}

// Finalize makes the question path absolute so the .env works from any
// working directory.
func Finalize(state *InstallState) {
	if p := state.Config.QuestionsPath; p != "" && !filepath.IsAbs(p) {
		if abs, err := filepath.Abs(p); err == nil {
			state.Config.QuestionsPath = abs
		}
	}
}
