package journal

import (
	"sync"
	"time"
)

// toast shows the "saved" notice for a fixed window. Showing it again while
// visible restarts the window instead of stacking a second timer.
type toast struct {
	duration time.Duration
	render   func(visible bool)

	mu    sync.Mutex
	timer *time.Timer
	gen   uint64
}

func newToast(d time.Duration, render func(visible bool)) *toast {
	return &toast{duration: d, render: render}
}

func (t *toast) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
	}
	t.gen++
	gen := t.gen
	t.render(true)

	t.timer = time.AfterFunc(t.duration, func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		// a newer Show owns the notice
		if gen != t.gen {
			return
		}
		t.timer = nil
		t.render(false)
	})
}

// Stop hides a visible notice immediately.
func (t *toast) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer == nil {
		return
	}
	t.timer.Stop()
	t.timer = nil
	t.gen++
	t.render(false)
}
