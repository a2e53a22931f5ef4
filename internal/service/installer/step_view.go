package installer

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/daybook/internal/config"
)

// ViewStep picks the default view of `daybook start`
type ViewStep struct {
	choices []string
	labels  []string
	cursor  int
}

func NewViewStep() Step {
	return &ViewStep{
		choices: []string{config.ViewTUI, config.ViewCLI},
		labels:  []string{"Full-screen terminal UI", "Line-by-line console"},
		cursor:  0,
	}
}

func (s *ViewStep) Init() tea.Cmd {
	return nil
}

func (s *ViewStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.choices)-1 {
				s.cursor++
			}
		case "enter":
			state.Config.View = s.choices[s.cursor]
			return nil, nil
		}
	}
	return s, nil
}

func (s *ViewStep) View(state *InstallState) string {
	var b strings.Builder
	b.WriteString("Select how daybook starts:\n\n")
	for i, label := range s.labels {
		line := fmt.Sprintf("%s (%s)", label, s.choices[i])
		if s.cursor == i {
			b.WriteString(selStyle.Render("❯ "+line) + "\n")
		} else {
			b.WriteString(itemStyle.Render("  "+line) + "\n")
		}
	}
	b.WriteString("\n(press ctrl+c to quit)\n")
	return b.String()
}
