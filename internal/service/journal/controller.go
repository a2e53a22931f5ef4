// Package journal holds the session state of the daily question widget and
// pushes derived state to a core.Renderer.
package journal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sandevgo/daybook/internal/core"
	"github.com/sandevgo/daybook/internal/service/memory"
	"github.com/sandevgo/daybook/internal/service/projector"
	"github.com/sandevgo/daybook/pkg/log"
)

const dateLayout = "2006.01.02"

type Config struct {
	PageSize      int
	ToastDuration time.Duration
	ClockInterval time.Duration
	// Location decides calendar days. Nil means time.Local.
	Location *time.Location
}

type QuestionScheduler interface {
	LoadBank(ctx context.Context) error
	EnsureTodayQuestion(ctx context.Context, now time.Time) (string, error)
}

type Controller struct {
	cfg       Config
	scheduler QuestionScheduler
	log       *memory.Log
	store     core.KVStore
	view      core.Renderer
	now       func() time.Time

	mu       sync.Mutex
	state    core.ViewState
	number   int
	question string
	answered bool
	ready    bool
	toast    *toast
}

func NewController(
	cfg Config,
	scheduler QuestionScheduler,
	log *memory.Log,
	store core.KVStore,
	view core.Renderer,
) *Controller {
	if cfg.PageSize < 1 {
		cfg.PageSize = core.DefaultPageSize
	}
	if cfg.ToastDuration <= 0 {
		cfg.ToastDuration = 2 * time.Second
	}
	if cfg.ClockInterval <= 0 {
		cfg.ClockInterval = time.Second
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}

	c := &Controller{
		cfg:       cfg,
		scheduler: scheduler,
		log:       log,
		store:     store,
		view:      view,
		now:       time.Now,
		state:     core.ViewState{Sort: core.SortDesc, Page: 1},
	}
	c.toast = newToast(cfg.ToastDuration, view.RenderSaveToast)
	return c
}

// WithClock replaces the wall clock.
func (c *Controller) WithClock(now func() time.Time) *Controller {
	c.now = now
	return c
}

// Init loads the log and today's question and renders every section. A
// question bank failure is rendered with RenderFatal and returned; a corrupt
// log is logged and replaced by an empty one.
func (c *Controller) Init(ctx context.Context) error {
	logger := log.FromCtx(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.scheduler.LoadBank(ctx); err != nil {
		c.view.RenderFatal(err)
		return fmt.Errorf("failed to load question bank: %w", err)
	}

	if err := c.log.Load(ctx); err != nil {
		if !errors.Is(err, core.ErrCorruptData) {
			c.view.RenderFatal(err)
			return err
		}
		logger.Warn().Err(err).Msg("stored memories are unreadable, starting with an empty log")
	}

	number, err := memory.LoadCounter(ctx, c.store)
	if err != nil {
		c.view.RenderFatal(err)
		return err
	}
	c.number = number

	now := c.now().In(c.cfg.Location)
	question, err := c.scheduler.EnsureTodayQuestion(ctx, now)
	if err != nil {
		c.view.RenderFatal(err)
		return fmt.Errorf("failed to pick today's question: %w", err)
	}
	c.setQuestionLocked(question)

	c.state.Month = firstOfMonth(now)
	c.ready = true

	c.view.RenderDate(now.Format(dateLayout))
	c.renderQuestionLocked()
	c.renderPageLocked()
	c.renderCalendarLocked()

	logger.Info().Int("number", c.number).Bool("answered", c.answered).Msg("journal ready")
	return nil
}

// setQuestionLocked stores question and derives the answered flag. The
// all-answered message cannot itself be answered.
func (c *Controller) setQuestionLocked(question string) {
	c.question = question
	c.answered = question == core.AllAnsweredMessage || c.log.IsAnswered(question)
}

// SubmitAnswer records text for today's question. It reports false with no
// error when today's question was already answered. Blank text is rejected
// with core.ErrValidation.
func (c *Controller) SubmitAnswer(ctx context.Context, text string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.ready || c.answered {
		return false, nil
	}
	if strings.TrimSpace(text) == "" {
		return false, fmt.Errorf("%w: answer is empty", core.ErrValidation)
	}

	if _, err := c.log.Append(ctx, c.number, c.question, text, c.now().In(c.cfg.Location)); err != nil {
		return false, err
	}

	c.number++
	c.answered = true

	c.view.RenderAnsweredState()
	c.renderPageLocked()
	c.renderCalendarLocked()
	c.toast.Show()

	return true, nil
}

func (c *Controller) SetSort(order core.SortOrder) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Sort = order
	c.state.Page = 1
	c.renderPageLocked()
}

func (c *Controller) ToggleSort() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Sort = c.state.Sort.Toggle()
	c.state.Page = 1
	c.renderPageLocked()
}

// SetPage moves to page n. Pages outside 1..pageCount are ignored.
func (c *Controller) SetPage(n int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n < 1 || n > projector.PageCount(c.log.Len(), c.cfg.PageSize) {
		return false
	}
	c.state.Page = n
	c.renderPageLocked()
	return true
}

// ChangeMonth moves the calendar by delta months, rolling the year over.
func (c *Controller) ChangeMonth(delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	m := c.monthLocked()
	c.state.Month = time.Date(m.Year(), m.Month()+time.Month(delta), 1, 0, 0, 0, 0, c.cfg.Location)
	c.renderCalendarLocked()
}

func (c *Controller) SetYear(year int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	m := c.monthLocked()
	c.state.Month = time.Date(year, m.Month(), 1, 0, 0, 0, 0, c.cfg.Location)
	c.renderCalendarLocked()
}

// SetMonth jumps to month of the displayed year. Values outside 1..12 roll
// into the neighbouring years.
func (c *Controller) SetMonth(month time.Month) {
	c.mu.Lock()
	defer c.mu.Unlock()

	m := c.monthLocked()
	c.state.Month = time.Date(m.Year(), month, 1, 0, 0, 0, 0, c.cfg.Location)
	c.renderCalendarLocked()
}

// Refresh re-evaluates today's question, typically after midnight. When the
// question changed, the answer section is reset and re-rendered.
func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.ready {
		return nil
	}

	now := c.now().In(c.cfg.Location)
	question, err := c.scheduler.EnsureTodayQuestion(ctx, now)
	if err != nil {
		return fmt.Errorf("failed to refresh today's question: %w", err)
	}

	c.view.RenderDate(now.Format(dateLayout))
	c.renderCalendarLocked()
	if question == c.question {
		return nil
	}

	c.setQuestionLocked(question)
	c.renderQuestionLocked()
	log.FromCtx(ctx).Info().Bool("answered", c.answered).Msg("today's question changed")
	return nil
}

func (c *Controller) ViewState() core.ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Today returns the running question number, today's question and whether it
// has been answered.
func (c *Controller) Today() (int, string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.number, c.question, c.answered
}

// PageCount is the number of memory pages at the configured page size.
func (c *Controller) PageCount() int {
	return projector.PageCount(c.log.Len(), c.cfg.PageSize)
}

func (c *Controller) monthLocked() time.Time {
	if c.state.Month.IsZero() {
		c.state.Month = firstOfMonth(c.now().In(c.cfg.Location))
	}
	return c.state.Month
}

func (c *Controller) renderQuestionLocked() {
	c.view.RenderQuestion(c.number, c.question)
	if c.answered {
		c.view.RenderAnsweredState()
	}
}

func (c *Controller) renderPageLocked() {
	sorted := projector.SortedView(c.log.Records(), c.state.Sort)
	items, count := projector.Paginate(sorted, c.state.Page, c.cfg.PageSize)
	c.view.RenderMemoryPage(items, core.Pagination{Current: c.state.Page, Count: count, Sort: c.state.Sort})
}

func (c *Controller) renderCalendarLocked() {
	m := c.monthLocked()
	cells := projector.CalendarGrid(c.log.Records(), m.Year(), m.Month(), c.now(), c.cfg.Location)
	c.view.RenderCalendar(cells, m.Year(), m.Month())
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
