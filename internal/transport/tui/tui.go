// Package tui is the full-screen terminal view of the journal.
package tui

import (
	"context"
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/daybook/pkg/log"
)

// View runs the bubbletea program. It is a srv.Service whose Start returns
// when the user quits.
type View struct {
	journal  Journal
	renderer *Renderer
	opts     []tea.ProgramOption

	mu      sync.Mutex
	program *tea.Program
}

func New(journal Journal, renderer *Renderer, opts ...tea.ProgramOption) *View {
	return &View{
		journal:  journal,
		renderer: renderer,
		opts:     opts,
	}
}

func (v *View) Start(ctx context.Context) error {
	opts := append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, v.opts...)
	p := tea.NewProgram(newModel(ctx, v.journal, v.renderer), opts...)

	v.mu.Lock()
	v.program = p
	v.mu.Unlock()
	v.renderer.attach(p)

	log.FromCtx(ctx).Debug().Msg("terminal ui started")

	_, err := p.Run()
	v.renderer.attach(nil)
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func (v *View) Shutdown(ctx context.Context) error {
	v.mu.Lock()
	p := v.program
	v.mu.Unlock()

	if p != nil {
		p.Quit()
	}
	return nil
}
