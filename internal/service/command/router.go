package command

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sandevgo/daybook/internal/core"
)

type Router struct {
	commands map[string]core.Command
}

func New(commands []core.Command) *Router {
	c := &Router{
		commands: make(map[string]core.Command),
	}

	for _, cmd := range commands {
		c.commands[cmd.Name()] = cmd
	}
	return c
}

// Execute runs input when it is a slash command. The second result is false
// for plain text, which the caller treats as an answer.
func (c *Router) Execute(ctx context.Context, input string) (string, bool) {
	if !strings.HasPrefix(input, "/") {
		return "", false
	}

	parts := strings.Fields(input)
	name := strings.TrimPrefix(parts[0], "/")
	args := parts[1:]

	if name == "help" {
		return c.help(), true
	}

	cmd, ok := c.commands[name]
	if !ok {
		return fmt.Sprintf("Unknown command: /%s (try /help)", name), true
	}

	result, err := cmd.Execute(ctx, args)
	if err != nil {
		return fmt.Sprintf("Error: %v", err), true
	}
	return result, true
}

// ListCommands returns the registered commands sorted by name.
func (c *Router) ListCommands() []core.Command {
	res := make([]core.Command, 0, len(c.commands))
	for _, cmd := range c.commands {
		res = append(res, cmd)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name() < res[j].Name() })
	return res
}

func (c *Router) help() string {
	f := NewResponseFormatter()
	items := make([]string, 0, len(c.commands)+2)
	for _, cmd := range c.ListCommands() {
		items = append(items, fmt.Sprintf("/%-6s %s", cmd.Name(), cmd.Description()))
	}
	items = append(items, fmt.Sprintf("/%-6s %s", "help", "Show this list"), fmt.Sprintf("%-7s %s", "exit", "Quit"))
	return f.Combine(
		f.Info("Commands"),
		f.List(items),
		f.Tip("any other line is saved as today's answer"),
	)
}
