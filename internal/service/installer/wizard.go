package installer

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sandevgo/daybook/internal/config"
	"github.com/sandevgo/daybook/internal/service/questions"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	itemStyle  = lipgloss.NewStyle().PaddingLeft(2)
	selStyle   = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("5"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Step represents a single step in the setup wizard
type Step interface {
	Init() tea.Cmd
	Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd)
	View(state *InstallState) string
}

// Hooks are the side effects the final steps perform.
type Hooks struct {
	// CheckQuestions validates a custom question file.
	CheckQuestions func(path string) error
	// InitFiles prepares the runtime directory, e.g. the database.
	InitFiles func(cfg *config.AppConfig) error
}

// DefaultHooks validate question files with the question bank loader.
func DefaultHooks(ctx context.Context, initFiles func(cfg *config.AppConfig) error) Hooks {
	return Hooks{
		CheckQuestions: func(path string) error {
			_, err := questions.NewFileBank(path).Load(ctx)
			return err
		},
		InitFiles: initFiles,
	}
}

func getSteps(hooks Hooks) []Step {
	return []Step{
		NewViewStep(),
		NewPageSizeStep(),
		NewQuestionsStep(hooks.CheckQuestions),
		NewFinalizationStep(),
		NewSaveEnvStep(),
		NewInitializeFilesStep(hooks.InitFiles),
	}
}

type nextMsg struct{}

// model is the main Bubble Tea model that orchestrates the steps
type model struct {
	steps       []Step
	currentStep int
	state       *InstallState
	quitting    bool
	width       int
	height      int
}

func initialModel(defaults config.AppConfig, hooks Hooks) model {
	return model{
		steps:       getSteps(hooks),
		currentStep: 0,
		state:       NewInstallState(defaults),
	}
}

func (m model) Init() tea.Cmd {
	if len(m.steps) > 0 && m.steps[0] != nil {
		return m.steps[0].Init()
	}
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, tea.Quit
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
	}

	if m.currentStep >= len(m.steps) {
		return m, tea.Quit
	}

	nextStep, cmd := m.steps[m.currentStep].Update(msg, m.state, m.width, m.height)

	if nextStep == nil {
		// Step indicated completion, move to next
		m.currentStep++
		if m.currentStep >= len(m.steps) {
			return m, tea.Quit
		}
		return m, m.steps[m.currentStep].Init()
	}

	if nextStep != m.steps[m.currentStep] {
		m.steps[m.currentStep] = nextStep
	}

	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return "Setup cancelled.\n"
	}

	if m.currentStep >= len(m.steps) {
		return "Configuration complete!\n"
	}

	return titleStyle.Render("Setting up daybook 📔") + "\n\n" + m.steps[m.currentStep].View(m.state)
}

// RunWizard starts the TUI and returns the saved configuration.
func RunWizard(defaults config.AppConfig, hooks Hooks) (*InstallState, error) {
	p := tea.NewProgram(initialModel(defaults, hooks), tea.WithAltScreen())
	m, err := p.Run()
	if err != nil {
		return nil, err
	}

	finalModel := m.(model)
	if finalModel.quitting {
		return nil, fmt.Errorf("daybook setup interrupted")
	}

	return finalModel.state, nil
}
