package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sandevgo/daybook/internal/core"
	"github.com/sandevgo/daybook/internal/service/ui"
)

var (
	appTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	dateStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	sectionStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	questionStyle   = lipgloss.NewStyle().Bold(true).PaddingLeft(2)
	memoryHeadStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	memoryBodyStyle = lipgloss.NewStyle().PaddingLeft(4)
	pageStyle       = lipgloss.NewStyle().Padding(0, 1)
	pageActiveStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("4"))
	navHintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	boxStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)

	calDayHeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("8")).Width(5).Align(lipgloss.Center)
	calDayStyle        = lipgloss.NewStyle().Width(5).Align(lipgloss.Center)
	calTodayStyle      = lipgloss.NewStyle().Width(5).Align(lipgloss.Center).Bold(true).Foreground(lipgloss.Color("2"))
	calCursorStyle     = lipgloss.NewStyle().Width(5).Align(lipgloss.Center).Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("4"))
	calHasMemoryStyle  = lipgloss.NewStyle().Width(5).Align(lipgloss.Center).Foreground(lipgloss.Color("3"))
	calEmptyStyle      = lipgloss.NewStyle().Width(5).Align(lipgloss.Center).Foreground(lipgloss.Color("8"))
	calMonthTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
)

func (m model) View() string {
	s := m.view.snapshot()

	if s.fatal != nil {
		return ui.ErrorStyle.Render(fmt.Sprintf("Error: %v", s.fatal)) + "\n\n" + navHintStyle.Render("(press q to quit)") + "\n"
	}

	var sb strings.Builder

	title := appTitleStyle.Render(core.DaybookName)
	date := dateStyle.Render(s.date)
	titleLine := title
	if padding := m.width - lipgloss.Width(title) - lipgloss.Width(date); padding > 0 {
		titleLine += strings.Repeat(" ", padding) + date
	} else {
		titleLine += "  " + date
	}
	sb.WriteString(titleLine)
	sb.WriteString("\n\n")

	sb.WriteString(boxStyle.Render(m.renderQuestion(s)))
	sb.WriteString("\n\n")

	left := m.renderMemories(s)
	right := m.renderCalendar(s)
	if m.width > 0 && m.width < lipgloss.Width(left)+lipgloss.Width(right)+4 {
		sb.WriteString(left + "\n" + right)
	} else {
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right))
	}
	sb.WriteString("\n")

	if m.status != "" {
		sb.WriteString(ui.ErrorStyle.Render(m.status))
		sb.WriteString("\n")
	}
	sb.WriteString(m.renderHelp(s))
	return sb.String()
}

func (m model) renderQuestion(s screen) string {
	var sb strings.Builder
	sb.WriteString(sectionStyle.Render(ui.QuestionHeading(s.number)))
	sb.WriteString("\n")

	question := questionStyle.Render(ui.QuestionText(s.question))
	if s.answered {
		question = ui.MutedStyle.Render(question)
	}
	sb.WriteString(question)
	sb.WriteString("\n\n")

	switch {
	case s.answered:
		sb.WriteString(ui.MutedStyle.Render(ui.AnsweredLabel))
	default:
		sb.WriteString(m.input.View())
	}

	if s.toast {
		sb.WriteString("\n")
		sb.WriteString(ui.SuccessStyle.Render(ui.SavedLabel))
	}
	return sb.String()
}

func (m model) renderMemories(s screen) string {
	var sb strings.Builder
	sb.WriteString(sectionStyle.Render("기록"))
	sb.WriteString("  ")
	sb.WriteString(navHintStyle.Render(ui.SortLabel(s.pages.Sort)))
	sb.WriteString("\n\n")

	if len(s.items) == 0 {
		sb.WriteString(navHintStyle.Render(ui.EmptyMemories))
		sb.WriteString("\n")
	}
	for _, item := range s.items {
		sb.WriteString(memoryHeadStyle.Render(ui.MemoryHeading(item)))
		sb.WriteString("\n")
		sb.WriteString(memoryBodyStyle.Render(item.Answer))
		sb.WriteString("\n")
	}

	if s.pages.Count > 0 {
		sb.WriteString("\n")
		for i := 1; i <= s.pages.Count; i++ {
			label := fmt.Sprintf("%d", i)
			if i == s.pages.Current {
				sb.WriteString(pageActiveStyle.Render(label))
			} else {
				sb.WriteString(pageStyle.Render(label))
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m model) renderCalendar(s screen) string {
	var sb strings.Builder

	sb.WriteString(calMonthTitleStyle.Render(" " + ui.MonthTitle(s.year, int(s.month))))
	sb.WriteString("\n\n")

	for _, d := range ui.Weekdays {
		sb.WriteString(calDayHeaderStyle.Render(d))
	}
	sb.WriteString("\n")

	var selected *core.DayCell
	for i, cell := range s.cells {
		switch {
		case cell.Empty:
			sb.WriteString(calEmptyStyle.Render(""))
		default:
			dayStr := fmt.Sprintf("%2d", cell.Day)
			if cell.HasMemory {
				dayStr = fmt.Sprintf("%2d*", cell.Day)
			}

			switch {
			case m.mode == modeBrowse && cell.Day == m.cursor:
				sb.WriteString(calCursorStyle.Render(dayStr))
				c := cell
				selected = &c
			case cell.IsToday:
				sb.WriteString(calTodayStyle.Render(dayStr))
			case cell.HasMemory:
				sb.WriteString(calHasMemoryStyle.Render(dayStr))
			default:
				sb.WriteString(calDayStyle.Render(dayStr))
			}
		}
		if i%7 == 6 {
			sb.WriteString("\n")
		}
	}
	if len(s.cells)%7 != 0 {
		sb.WriteString("\n")
	}

	if selected != nil && selected.Memory != nil {
		sb.WriteString("\n")
		sb.WriteString(memoryHeadStyle.Render(selected.Memory.Question))
		if selected.Count > 1 {
			sb.WriteString(navHintStyle.Render(fmt.Sprintf(" (+%d)", selected.Count-1)))
		}
		sb.WriteString("\n")
		sb.WriteString(memoryBodyStyle.Render(selected.Memory.Answer))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m model) renderHelp(s screen) string {
	if m.mode == modeWrite {
		return navHintStyle.Render("[enter: save] [tab: browse] [ctrl+c: quit]")
	}
	hint := "[s: sort] [1-9/n/p: page] [h/j/k/l: day] [H/L: month] [y/Y: year] [t: today] [q: quit]"
	if !s.answered {
		hint = "[tab: write] " + hint
	}
	return navHintStyle.Render(hint)
}
