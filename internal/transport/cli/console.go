package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/sandevgo/daybook/internal/core"
	"github.com/sandevgo/daybook/internal/service/ui"
)

// Console prints rendered journal state as text. The clock re-renders the
// date every tick; Console prints it only when the day changes.
type Console struct {
	mu       sync.Mutex
	out      io.Writer
	lastDate string
}

func NewConsole(out io.Writer) *Console {
	if out == nil {
		out = os.Stdout
	}
	return &Console{out: out}
}

// SetOutput redirects printing, e.g. to a readline instance's stdout.
func (c *Console) SetOutput(out io.Writer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.out = out
}

func (c *Console) print(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out, s)
}

func (c *Console) RenderDate(text string) {
	c.mu.Lock()
	if text == c.lastDate {
		c.mu.Unlock()
		return
	}
	c.lastDate = text
	c.mu.Unlock()

	c.print(ui.TitleStyle.Render(fmt.Sprintf("%s  %s", core.DaybookName, text)))
}

func (c *Console) RenderQuestion(number int, text string) {
	c.print(ui.UsageStyle.Render(ui.QuestionHeading(number)) + "\n  " + ui.QuestionText(text))
}

func (c *Console) RenderAnsweredState() {
	c.print(ui.DescStyle.Render(ui.AnsweredLabel))
}

func (c *Console) RenderMemoryPage(items []core.MemoryRecord, pages core.Pagination) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n── 기록 %s ", ui.SortLabel(pages.Sort)))
	if pages.Count > 0 {
		sb.WriteString(fmt.Sprintf("(%d/%d)", pages.Current, pages.Count))
	}
	sb.WriteString("\n")

	if len(items) == 0 {
		sb.WriteString(ui.DescStyle.Render(ui.EmptyMemories))
	}
	for i, item := range items {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(ui.FlagStyle.Render(ui.MemoryHeading(item)))
		sb.WriteString("\n    ")
		sb.WriteString(item.Answer)
	}
	c.print(sb.String())
}

func (c *Console) RenderCalendar(cells []core.DayCell, year int, month time.Month) {
	c.print("\n" + FormatCalendar(cells, year, month))
}

func (c *Console) RenderSaveToast(visible bool) {
	if visible {
		c.print(ui.SuccessStyle.Render(ui.SavedLabel))
	}
}

func (c *Console) RenderFatal(err error) {
	c.print(ui.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
}

// FormatCalendar draws a month as a plain grid. Days with a memory carry a
// trailing '*'.
func FormatCalendar(cells []core.DayCell, year int, month time.Month) string {
	var sb strings.Builder
	sb.WriteString(ui.MonthTitle(year, int(month)))
	sb.WriteString("\n")
	for _, d := range ui.Weekdays {
		// Hangul takes two columns
		sb.WriteString(" " + d + " ")
	}
	sb.WriteString("\n")

	for i, cell := range cells {
		switch {
		case cell.Empty:
			sb.WriteString("    ")
		case cell.IsToday:
			sb.WriteString(fmt.Sprintf("[%2d]", cell.Day))
		case cell.HasMemory:
			sb.WriteString(fmt.Sprintf(" %2d*", cell.Day))
		default:
			sb.WriteString(fmt.Sprintf(" %2d ", cell.Day))
		}
		if i%7 == 6 && i != len(cells)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
