package command

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

// MonthStepCommand moves the calendar by a fixed number of months.
type MonthStepCommand struct {
	journal Journal
	name    string
	delta   int
}

func NewMonthStepCommand(journal Journal, name string, delta int) *MonthStepCommand {
	return &MonthStepCommand{journal: journal, name: name, delta: delta}
}

func (c *MonthStepCommand) Name() string {
	return c.name
}

func (c *MonthStepCommand) Description() string {
	if c.delta < 0 {
		return "Show the previous month"
	}
	return "Show the next month"
}

func (c *MonthStepCommand) Execute(ctx context.Context, args []string) (string, error) {
	c.journal.ChangeMonth(c.delta)
	return "", nil
}

type YearCommand struct {
	journal Journal
}

func NewYearCommand(journal Journal) *YearCommand {
	return &YearCommand{journal: journal}
}

func (c *YearCommand) Name() string {
	return "year"
}

func (c *YearCommand) Description() string {
	return "Jump the calendar to year Y"
}

func (c *YearCommand) Execute(ctx context.Context, args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("usage: /year Y")
	}
	year, err := strconv.Atoi(args[0])
	if err != nil {
		return "", fmt.Errorf("year must be a number, got %q", args[0])
	}
	c.journal.SetYear(year)
	return "", nil
}

type MonthCommand struct {
	journal Journal
}

func NewMonthCommand(journal Journal) *MonthCommand {
	return &MonthCommand{journal: journal}
}

func (c *MonthCommand) Name() string {
	return "month"
}

func (c *MonthCommand) Description() string {
	return "Jump the calendar to month M (1-12)"
}

func (c *MonthCommand) Execute(ctx context.Context, args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("usage: /month M")
	}
	month, err := strconv.Atoi(args[0])
	if err != nil {
		return "", fmt.Errorf("month must be a number, got %q", args[0])
	}
	c.journal.SetMonth(time.Month(month))
	return "", nil
}
