package test

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/sandevgo/daybook/internal/core"
)

const (
	QuestionsFixturePath = "./testdata/questions.json"
)

// GetQuestionsFixturePath returns the small question bank used by integration tests.
func GetQuestionsFixturePath(t *testing.T) string {
	_, filename, _, _ := runtime.Caller(0)
	testDir := filepath.Dir(filename)

	path := filepath.Join(testDir, QuestionsFixturePath)
	if _, err := os.Stat(path); err != nil {
		t.Skipf("Question fixture not found at %s: %v", path, err)
	}
	return path
}

// Clock is a settable time source.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

func NewClock(now time.Time) *Clock {
	return &Clock{now: now}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Clock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Frame is what a Renderer has been told so far.
type Frame struct {
	Date           string
	Number         int
	Question       string
	Answered       bool
	Items          []core.MemoryRecord
	Pages          core.Pagination
	Cells          []core.DayCell
	Year           int
	Month          time.Month
	ToastVisible   bool
	ToastShows     int
	Fatal          error
	PageRenders    int
	CalendarRender int
}

// Renderer records the last value of every render call.
type Renderer struct {
	mu sync.Mutex
	f  Frame
}

func (r *Renderer) RenderDate(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.f.Date = text
}

func (r *Renderer) RenderQuestion(number int, text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.f.Number = number
	r.f.Question = text
	r.f.Answered = false
}

func (r *Renderer) RenderAnsweredState() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.f.Answered = true
}

func (r *Renderer) RenderMemoryPage(items []core.MemoryRecord, pages core.Pagination) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.f.Items = items
	r.f.Pages = pages
	r.f.PageRenders++
}

func (r *Renderer) RenderCalendar(cells []core.DayCell, year int, month time.Month) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.f.Cells = cells
	r.f.Year = year
	r.f.Month = month
	r.f.CalendarRender++
}

func (r *Renderer) RenderSaveToast(visible bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.f.ToastVisible = visible
	if visible {
		r.f.ToastShows++
	}
}

func (r *Renderer) RenderFatal(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.f.Fatal = err
}

// Snapshot returns a copy safe to inspect while timers keep rendering.
func (r *Renderer) Snapshot() Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	f := r.f
	f.Items = append([]core.MemoryRecord(nil), r.f.Items...)
	f.Cells = append([]core.DayCell(nil), r.f.Cells...)
	return f
}

// MarkedDays lists the days of the last calendar that carry a memory.
func (r *Renderer) MarkedDays() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	var days []int
	for _, c := range r.f.Cells {
		if c.HasMemory {
			days = append(days, c.Day)
		}
	}
	return days
}
