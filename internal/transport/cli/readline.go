package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/sandevgo/daybook/internal/config"
	"github.com/sandevgo/daybook/internal/service/command"
	"github.com/sandevgo/daybook/internal/service/ui"
	"github.com/sandevgo/daybook/pkg/log"
)

type Answerer interface {
	SubmitAnswer(ctx context.Context, text string) (bool, error)
}

// ReadLine is the line-oriented view: plain lines answer today's question,
// slash commands browse memories and the calendar.
type ReadLine struct {
	journal Answerer
	router  *command.Router
	console *Console
	rl      *readline.Instance
}

func NewReadLine(journal Answerer, router *command.Router, console *Console, cfg *config.AppConfig) (*ReadLine, error) {
	if err := os.MkdirAll(cfg.RuntimePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "✎ ",
		HistoryFile:     cfg.GetHistoryPath(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}
	console.SetOutput(rl.Stdout())

	return &ReadLine{
		journal: journal,
		router:  router,
		console: console,
		rl:      rl,
	}, nil
}

func (r *ReadLine) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	logger.Debug().Msg("readline console started")
	r.console.print(ui.DescStyle.Render("Type your answer, /help for commands, 'exit' to quit."))

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := r.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				if len(line) == 0 {
					return nil
				}
				continue
			} else if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		if quit := r.Handle(ctx, line); quit {
			return nil
		}
	}
}

// Handle processes one input line and reports whether the user asked to quit.
func (r *ReadLine) Handle(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	switch line {
	case "":
		return false
	case "exit", "/exit":
		return true
	}

	if reply, ok := r.router.Execute(ctx, line); ok {
		if reply != "" {
			r.console.print(reply)
		}
		return false
	}

	saved, err := r.journal.SubmitAnswer(ctx, line)
	if err != nil {
		log.FromCtx(ctx).Error().Err(err).Msg("failed to save answer")
		r.console.print(ui.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		return false
	}
	if !saved {
		r.console.print(ui.DescStyle.Render(ui.AnsweredLabel))
	}
	return false
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}
