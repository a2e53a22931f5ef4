package installer

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// QuestionsStep optionally points daybook at a custom question file
type QuestionsStep struct {
	input textinput.Model
	check func(path string) error
	err   error
}

func NewQuestionsStep(check func(path string) error) Step {
	input := textinput.New()
	input.Focus()
	input.CharLimit = 255
	input.Width = 50
	input.Placeholder = "Optional - press Enter to use the bundled questions"
	return &QuestionsStep{input: input, check: check}
}

func (s *QuestionsStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *QuestionsStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		path := strings.TrimSpace(s.input.Value())
		if path != "" && s.check != nil {
			if err := s.check(path); err != nil {
				s.err = err
				return s, nil
			}
		}
		state.Config.QuestionsPath = path
		return nil, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *QuestionsStep) View(state *InstallState) string {
	var b strings.Builder
	b.WriteString("Question file (a JSON array of strings):\n\n")
	b.WriteString(s.input.View())
	b.WriteString("\n\n")
	if s.err != nil {
		b.WriteString(errorStyle.Render(s.err.Error()) + "\n\n")
	}
	b.WriteString(hintStyle.Render("(press enter to confirm)") + "\n")
	return b.String()
}
