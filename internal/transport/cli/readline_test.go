package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sandevgo/daybook/internal/core"
	"github.com/sandevgo/daybook/internal/service/command"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeJournal struct {
	answers  []string
	answered bool
	err      error
	state    core.ViewState
}

func (f *fakeJournal) SubmitAnswer(ctx context.Context, text string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if f.answered {
		return false, nil
	}
	f.answers = append(f.answers, text)
	f.answered = true
	return true, nil
}

func (f *fakeJournal) SetSort(order core.SortOrder) { f.state.Sort = order }
func (f *fakeJournal) ToggleSort()                  { f.state.Sort = f.state.Sort.Toggle() }
func (f *fakeJournal) SetPage(n int) bool           { return false }
func (f *fakeJournal) PageCount() int               { return 0 }
func (f *fakeJournal) ChangeMonth(delta int)        {}
func (f *fakeJournal) SetYear(year int)             {}
func (f *fakeJournal) SetMonth(month time.Month)    {}
func (f *fakeJournal) ViewState() core.ViewState    { return f.state }

func newTestReadLine(j *fakeJournal) (*ReadLine, *bytes.Buffer) {
	var out bytes.Buffer
	return &ReadLine{
		journal: j,
		router:  command.New(command.NewCommands(j)),
		console: NewConsole(&out),
	}, &out
}

func TestHandle(t *testing.T) {
	j := &fakeJournal{state: core.ViewState{Sort: core.SortDesc, Page: 1}}
	r, out := newTestReadLine(j)
	ctx := context.Background()

	assert.False(t, r.Handle(ctx, "   "))
	assert.Empty(t, j.answers)

	assert.False(t, r.Handle(ctx, "  the sea at dawn "))
	assert.Equal(t, []string{"the sea at dawn"}, j.answers)

	assert.False(t, r.Handle(ctx, "again"))
	assert.Contains(t, out.String(), "이미 완료하였습니다.")

	assert.False(t, r.Handle(ctx, "/sort"))
	assert.Equal(t, core.SortAsc, j.state.Sort)
	assert.Contains(t, out.String(), "오름차순")

	assert.True(t, r.Handle(ctx, "exit"))
	assert.True(t, r.Handle(ctx, "/exit"))
}

func TestHandle_SubmitError(t *testing.T) {
	j := &fakeJournal{err: errors.New("disk full")}
	r, out := newTestReadLine(j)

	assert.False(t, r.Handle(context.Background(), "text"))
	assert.Contains(t, out.String(), "disk full")
}

func TestConsole_DatePrintedOncePerDay(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(&out)

	c.RenderDate("2024.06.01")
	c.RenderDate("2024.06.01")
	c.RenderDate("2024.06.02")

	assert.Equal(t, 1, bytes.Count(out.Bytes(), []byte("2024.06.01")))
	assert.Equal(t, 1, bytes.Count(out.Bytes(), []byte("2024.06.02")))
}

func TestConsole_MemoryPage(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(&out)

	c.RenderMemoryPage(nil, core.Pagination{Current: 1, Sort: core.SortDesc})
	assert.Contains(t, out.String(), "아직 기록이 없습니다.")

	out.Reset()
	c.RenderMemoryPage([]core.MemoryRecord{{Number: 3, Question: "Q3", Answer: "A3"}}, core.Pagination{Current: 2, Count: 2, Sort: core.SortAsc})
	assert.Contains(t, out.String(), "#3 | Q3")
	assert.Contains(t, out.String(), "A3")
	assert.Contains(t, out.String(), "(2/2)")
}

func TestFormatCalendar(t *testing.T) {
	cells := []core.DayCell{
		{Empty: true}, {Empty: true}, {Empty: true}, {Empty: true}, {Empty: true}, {Empty: true},
		{Day: 1, HasMemory: true, Count: 1},
		{Day: 2, IsToday: true},
		{Day: 3},
	}

	got := FormatCalendar(cells, 2024, time.June)
	lines := bytes.Split([]byte(got), []byte("\n"))
	require.Len(t, lines, 4)
	assert.Equal(t, "2024년 6월", string(lines[0]))
	assert.Equal(t, strings.Repeat(" ", 26)+"1*", string(lines[2]))
	assert.Equal(t, "[ 2]  3 ", string(lines[3]))
}
