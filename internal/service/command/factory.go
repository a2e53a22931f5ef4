package command

import (
	"time"

	"github.com/sandevgo/daybook/internal/core"
)

// Journal is the controller surface the console commands drive.
type Journal interface {
	SetSort(order core.SortOrder)
	ToggleSort()
	SetPage(n int) bool
	PageCount() int
	ChangeMonth(delta int)
	SetYear(year int)
	SetMonth(month time.Month)
	ViewState() core.ViewState
}

func NewCommands(journal Journal) []core.Command {
	return []core.Command{
		NewSortCommand(journal),
		NewPageCommand(journal),
		NewMonthStepCommand(journal, "prev", -1),
		NewMonthStepCommand(journal, "next", 1),
		NewYearCommand(journal),
		NewMonthCommand(journal),
	}
}
