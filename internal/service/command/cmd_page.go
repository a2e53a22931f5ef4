package command

import (
	"context"
	"fmt"
	"strconv"
)

type PageCommand struct {
	journal   Journal
	formatter *ResponseFormatter
}

func NewPageCommand(journal Journal) *PageCommand {
	return &PageCommand{journal: journal, formatter: NewResponseFormatter()}
}

func (c *PageCommand) Name() string {
	return "page"
}

func (c *PageCommand) Description() string {
	return "Show memory page N"
}

func (c *PageCommand) Execute(ctx context.Context, args []string) (string, error) {
	count := c.journal.PageCount()
	if len(args) == 0 {
		return c.formatter.Combine(
			c.formatter.Label("Page", fmt.Sprintf("%d/%d", c.journal.ViewState().Page, count)),
			c.formatter.Usage("/page N"),
		), nil
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		return "", fmt.Errorf("page must be a number, got %q", args[0])
	}
	if !c.journal.SetPage(n) {
		return "", fmt.Errorf("page %d is out of range 1..%d", n, count)
	}
	return "", nil
}
