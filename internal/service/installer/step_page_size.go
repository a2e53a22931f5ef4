package installer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// PageSizeStep asks how many memories one page shows
type PageSizeStep struct {
	input textinput.Model
	err   error
}

func NewPageSizeStep() Step {
	input := textinput.New()
	input.Focus()
	input.CharLimit = 3
	input.Width = 10
	return &PageSizeStep{input: input}
}

func (s *PageSizeStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *PageSizeStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if s.input.Placeholder == "" {
		s.input.Placeholder = strconv.Itoa(state.Config.PageSize)
	}

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		raw := strings.TrimSpace(s.input.Value())
		if raw == "" {
			return nil, nil
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			s.err = fmt.Errorf("page size must be a positive number, got %q", raw)
			return s, nil
		}
		state.Config.PageSize = n
		return nil, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *PageSizeStep) View(state *InstallState) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Memories per page (default %d):\n\n%s\n\n", state.Config.PageSize, s.input.View()))
	if s.err != nil {
		b.WriteString(errorStyle.Render(s.err.Error()) + "\n\n")
	}
	b.WriteString("(press enter to confirm)\n")
	return b.String()
}
