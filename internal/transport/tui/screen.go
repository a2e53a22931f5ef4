package tui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/daybook/internal/core"
)

// repaintMsg asks the program to redraw after a render from outside Update.
type repaintMsg struct{}

type screen struct {
	date     string
	number   int
	question string
	answered bool
	items    []core.MemoryRecord
	pages    core.Pagination
	cells    []core.DayCell
	year     int
	month    time.Month
	toast    bool
	fatal    error
}

// Renderer keeps the latest rendered state for the bubbletea model. Render
// calls may come from any goroutine; each one schedules a repaint.
type Renderer struct {
	mu      sync.Mutex
	s       screen
	program *tea.Program
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) attach(p *tea.Program) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.program = p
}

func (r *Renderer) snapshot() screen {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.s
}

func (r *Renderer) update(fn func(s *screen)) {
	r.mu.Lock()
	fn(&r.s)
	p := r.program
	r.mu.Unlock()

	// Send blocks until the event loop reads it, and Update may be the caller.
	if p != nil {
		go p.Send(repaintMsg{})
	}
}

func (r *Renderer) RenderDate(text string) {
	r.update(func(s *screen) { s.date = text })
}

func (r *Renderer) RenderQuestion(number int, text string) {
	r.update(func(s *screen) {
		s.number = number
		s.question = text
		s.answered = false
	})
}

func (r *Renderer) RenderAnsweredState() {
	r.update(func(s *screen) { s.answered = true })
}

func (r *Renderer) RenderMemoryPage(items []core.MemoryRecord, pages core.Pagination) {
	r.update(func(s *screen) {
		s.items = items
		s.pages = pages
	})
}

func (r *Renderer) RenderCalendar(cells []core.DayCell, year int, month time.Month) {
	r.update(func(s *screen) {
		s.cells = cells
		s.year = year
		s.month = month
	})
}

func (r *Renderer) RenderSaveToast(visible bool) {
	r.update(func(s *screen) { s.toast = visible })
}

func (r *Renderer) RenderFatal(err error) {
	r.update(func(s *screen) { s.fatal = err })
}
