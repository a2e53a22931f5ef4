package tui

import (
	"context"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/daybook/internal/core"
)

// Journal is the controller surface the terminal UI drives.
type Journal interface {
	SubmitAnswer(ctx context.Context, text string) (bool, error)
	ToggleSort()
	SetPage(n int) bool
	ChangeMonth(delta int)
	SetYear(year int)
	SetMonth(month time.Month)
	ViewState() core.ViewState
}

type mode int

const (
	modeWrite mode = iota
	modeBrowse
)

type model struct {
	ctx     context.Context
	journal Journal
	view    *Renderer
	now     func() time.Time

	input  textinput.Model
	mode   mode
	cursor int // day of the displayed month, 0 for none
	status string
	width  int
	height int
}

func newModel(ctx context.Context, journal Journal, view *Renderer) model {
	input := textinput.New()
	input.Placeholder = "오늘의 답을 적어주세요"
	input.CharLimit = 2000
	input.Width = 60
	input.Focus()

	m := model{
		ctx:     ctx,
		journal: journal,
		view:    view,
		now:     time.Now,
		input:   input,
		mode:    modeWrite,
	}
	if s := view.snapshot(); s.answered {
		m.mode = modeBrowse
		m.input.Blur()
	}
	return m
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case repaintMsg:
		if m.view.snapshot().answered && m.mode == modeWrite {
			m.mode = modeBrowse
			m.input.Blur()
		}
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.view.snapshot().fatal != nil {
			if msg.String() == "q" || msg.String() == "esc" {
				return m, tea.Quit
			}
			return m, nil
		}
		if m.mode == modeWrite {
			return m.updateWrite(msg)
		}
		return m.updateBrowse(msg)
	}

	if m.mode == modeWrite {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) updateWrite(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "esc":
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil
	case "enter":
		ok, err := m.journal.SubmitAnswer(m.ctx, m.input.Value())
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.status = ""
		if ok {
			m.input.Reset()
			m.mode = modeBrowse
			m.input.Blur()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := m.journal.ViewState()

	switch key := msg.String(); key {
	case "q":
		return m, tea.Quit
	case "tab", "i":
		if m.view.snapshot().answered {
			return m, nil
		}
		m.mode = modeWrite
		return m, m.input.Focus()
	case "s":
		m.journal.ToggleSort()
	case "n", "]":
		m.journal.SetPage(state.Page + 1)
	case "p", "[":
		m.journal.SetPage(state.Page - 1)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		n, _ := strconv.Atoi(key)
		m.journal.SetPage(n)
	case "H":
		m.journal.ChangeMonth(-1)
		m.cursor = 1
	case "L":
		m.journal.ChangeMonth(1)
		m.cursor = 1
	case "y":
		m.journal.SetYear(state.Month.Year() - 1)
	case "Y":
		m.journal.SetYear(state.Month.Year() + 1)
	case "t":
		now := m.now()
		m.journal.SetYear(now.Year())
		m.journal.SetMonth(now.Month())
		m.cursor = now.Day()
	case "h", "left":
		m.moveCursor(-1)
	case "l", "right":
		m.moveCursor(1)
	case "k", "up":
		m.moveCursor(-7)
	case "j", "down":
		m.moveCursor(7)
	case "esc":
		m.cursor = 0
	}

	m.clampCursor()
	return m, nil
}

// moveCursor shifts the selected day, following it into the next or previous
// month when it leaves the displayed one.
func (m *model) moveCursor(days int) {
	month := m.journal.ViewState().Month
	if month.IsZero() {
		return
	}
	if m.cursor == 0 {
		m.cursor = 1
		return
	}

	target := time.Date(month.Year(), month.Month(), m.cursor+days, 0, 0, 0, 0, month.Location())
	if delta := monthsBetween(month, target); delta != 0 {
		m.journal.ChangeMonth(delta)
	}
	m.cursor = target.Day()
}

func (m *model) clampCursor() {
	if m.cursor == 0 {
		return
	}
	month := m.journal.ViewState().Month
	if month.IsZero() {
		m.cursor = 0
		return
	}
	if last := month.AddDate(0, 1, -1).Day(); m.cursor > last {
		m.cursor = last
	}
}

func monthsBetween(from, to time.Time) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}
