package command

import (
	"context"
	"fmt"

	"github.com/sandevgo/daybook/internal/core"
	"github.com/sandevgo/daybook/internal/service/ui"
)

type SortCommand struct {
	journal   Journal
	formatter *ResponseFormatter
}

func NewSortCommand(journal Journal) *SortCommand {
	return &SortCommand{journal: journal, formatter: NewResponseFormatter()}
}

func (c *SortCommand) Name() string {
	return "sort"
}

func (c *SortCommand) Description() string {
	return "Toggle or set the memory order (asc|desc)"
}

func (c *SortCommand) Execute(ctx context.Context, args []string) (string, error) {
	if len(args) == 0 {
		c.journal.ToggleSort()
	} else {
		order, err := core.ParseSortOrder(args[0])
		if err != nil {
			return "", fmt.Errorf("%w, use /sort asc or /sort desc", err)
		}
		c.journal.SetSort(order)
	}
	return c.formatter.Success(ui.SortLabel(c.journal.ViewState().Sort)), nil
}
